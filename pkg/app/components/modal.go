package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/locale"
)

// IntroModal is the welcome dialog shown until the user confirms it once.
type IntroModal struct {
	Visible bool
}

func NewIntroModal(alreadyShown bool) *IntroModal {
	return &IntroModal{Visible: !alreadyShown}
}

func (m *IntroModal) Confirm() {
	m.Visible = false
}

func (m *IntroModal) View(tr *locale.Translator, width, height int) string {
	if !m.Visible {
		return ""
	}
	boxWidth := 60
	if width > 0 && width-4 < boxWidth {
		boxWidth = width - 4
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		styles.TitleStyle.Render(tr.T(locale.KeyIntroTitle)),
		styles.TextStyle.Width(boxWidth-8).Render(tr.T(locale.KeyIntroBody)),
		"",
		styles.ButtonStyle.Render(tr.T(locale.KeyIntroConfirm)),
	)
	box := styles.ModalStyle.Width(boxWidth).Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
