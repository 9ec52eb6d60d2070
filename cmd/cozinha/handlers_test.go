package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hammamikhairi/cozinha/internal/app"
)

func TestPanelLogClaim(t *testing.T) {
	var l panelLog

	assert.False(t, l.claim(app.Panel{}), "closed panel")

	p := app.Panel{Kind: app.PanelSubstitution, Subject: "sal", Text: "- Shoyu", Seq: 1}
	assert.True(t, l.claim(p))
	assert.False(t, l.claim(p), "already printed")

	// Same lookup, same text, new reply.
	p.Seq = 2
	assert.True(t, l.claim(p))
}

func TestIsAll(t *testing.T) {
	for _, s := range []string{"all", "Todos", "todas", "*"} {
		assert.True(t, isAll(s), s)
	}
	assert.False(t, isAll("doce"))
}
