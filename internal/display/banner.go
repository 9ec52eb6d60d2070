package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

//go:embed banner.txt
var bannerRaw string

// Tagline is printed under the banner art.
const Tagline = "receitas · modo cozinha · lista de compras"

// RenderBanner returns the banner art and tagline horizontally centred
// for the current terminal width.
func RenderBanner() string {
	return renderBanner(termWidth())
}

func renderBanner(width int) string {
	lines := strings.Split(strings.TrimRight(bannerRaw, "\n"), "\n")

	maxW := 0
	for _, l := range lines {
		maxW = max(maxW, lipgloss.Width(l))
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centre(width, maxW))
		b.WriteString(BannerStyle.Render(l))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(centre(width, lipgloss.Width(Tagline)))
	b.WriteString(secondaryStyle.Render(Tagline))
	b.WriteByte('\n')
	return b.String()
}

// centre returns the left padding that centres w columns in width.
func centre(width, w int) string {
	if width <= w {
		return ""
	}
	return strings.Repeat(" ", (width-w)/2)
}

// termWidth returns the current terminal column count, or 80 as fallback.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
