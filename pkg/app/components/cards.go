package components

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
)

const (
	TeacherPlaceholder  = "https://images.pexels.com/photos/3184360/pexels-photo-3184360.jpeg"
	MaterialPlaceholder = "https://images.pexels.com/photos/3861969/pexels-photo-3861969.jpeg"
)

var subjectIcons = map[string]string{
	"الفيزياء":  "⚛",
	"الكيمياء":  "⚗",
	"الأحياء":   "🧬",
	"الرياضيات": "🧮",
}

// SubjectIcon returns the icon of a known subject, a book otherwise.
func SubjectIcon(name string) string {
	if icon, ok := subjectIcons[strings.TrimSpace(name)]; ok {
		return icon
	}
	return "📖"
}

// ImageOrPlaceholder keeps absolute http(s) image links and replaces
// anything else with the placeholder.
func ImageOrPlaceholder(image, placeholder string) string {
	u, err := url.Parse(strings.TrimSpace(image))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return placeholder
	}
	return u.String()
}

func card(selected bool, width int, lines ...string) string {
	style := styles.CardStyle
	if selected {
		style = styles.ActiveCardStyle
	}
	if width > 4 {
		style = style.Width(width - 4)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// NavCard is a plain card with a title and a subtitle, used on the home page.
func NavCard(icon, title, subtitle string, selected bool, width int) string {
	return card(selected, width,
		styles.TitleStyle.UnsetMarginBottom().Render(icon+" "+title),
		styles.MutedStyle.Render(subtitle),
	)
}

func TeacherCard(teacher *data.Teacher, tr *locale.Translator, selected bool, width int) string {
	return card(selected, width,
		styles.TitleStyle.UnsetMarginBottom().Render(teacher.Name),
		styles.SubtitleStyle.Render(teacher.Subject),
		styles.TextStyle.Render(tr.Count(locale.KeyClassCount, len(teacher.Classes))),
		styles.MutedStyle.Render("🖼 "+ImageOrPlaceholder(teacher.Image, TeacherPlaceholder)),
	)
}

func MaterialCard(material data.Material, tr *locale.Translator, selected bool, width int) string {
	download := styles.ButtonStyle.Render("⬇ " + tr.T(locale.KeyDownload))
	return card(selected, width,
		styles.TitleStyle.UnsetMarginBottom().Render(material.Title),
		styles.SubtitleStyle.Render(material.Subject),
		styles.MutedStyle.Render("🖼 "+ImageOrPlaceholder(material.Image, MaterialPlaceholder)),
		download,
	)
}

func SubjectCard(subject *data.Subject, tr *locale.Translator, selected bool, width int) string {
	return card(selected, width,
		styles.TitleStyle.UnsetMarginBottom().Render(SubjectIcon(subject.Name)+" "+subject.Name),
		styles.MutedStyle.Render(tr.Count(locale.KeyChapterCount, len(subject.Chapters))),
	)
}
