package display

import (
	_ "embed"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/lines"
)

//go:embed banner.txt
var bannerArt string

// RenderBanner returns the sprout art with the player's savings under it,
// centred for the current terminal.
func RenderBanner(wallet domain.Wallet) string {
	return renderBanner(wallet, termWidth())
}

func renderBanner(wallet domain.Wallet, width int) string {
	art := BannerStyle.Render(strings.TrimRight(bannerArt, "\n"))
	block := lipgloss.JoinVertical(lipgloss.Center, art, "", rewardStyle.Render(bannerTagline(wallet)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// bannerTagline greets a new player or shows what they have saved.
func bannerTagline(w domain.Wallet) string {
	if w == (domain.Wallet{}) {
		return lines.FirstVisit()
	}
	return lines.WalletLine(w)
}

// termWidth returns the terminal column count, or 80 when stdout is not
// a terminal.
func termWidth() int {
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return 80
}
