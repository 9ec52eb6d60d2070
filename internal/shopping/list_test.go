package shopping

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddThenClear(t *testing.T) {
	l := New()
	l.Add("2 unid tomate")
	l.Add("1 kg arroz")

	assert.Equal(t, []string{"2 unid tomate", "1 kg arroz"}, l.Items())
	assert.Equal(t, 2, l.Len())

	l.Clear()
	assert.Equal(t, []string{}, l.Items())
	assert.Equal(t, 0, l.Len())
}

func TestDuplicatesKept(t *testing.T) {
	l := New()
	l.Add("1 kg arroz")
	l.Add("1 kg arroz")
	assert.Equal(t, []string{"1 kg arroz", "1 kg arroz"}, l.Items())
}

func TestItemsIsACopy(t *testing.T) {
	l := New()
	l.Add("sal")
	items := l.Items()
	items[0] = "açúcar"
	assert.Equal(t, []string{"sal"}, l.Items())
}

func TestConcurrentAdd(t *testing.T) {
	l := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Add("ovo")
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, l.Len())
}
