package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/progress"
	"github.com/kerbaras/lectures/pkg/services"
)

// ProgressBar renders percent (0-100) as a bar of the given width.
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// CourseProgress is the aggregate bar shown above the teacher list.
func CourseProgress(summary progress.Summary, tr *locale.Translator, width int) string {
	label := tr.T(locale.KeyProgressCourse, fmt.Sprint(summary.Percent))
	return ProgressBar(summary.Percent, width) + "\n" + styles.MutedStyle.Render(label)
}

// DownloadTracker keeps the latest state of each running file download.
type DownloadTracker struct {
	downloads map[string]*services.DownloadProgress
	order     []string
	width     int
}

func NewDownloadTracker(width int) *DownloadTracker {
	return &DownloadTracker{
		downloads: make(map[string]*services.DownloadProgress),
		width:     width,
	}
}

func (p *DownloadTracker) SetWidth(width int) {
	p.width = width
}

func (p *DownloadTracker) Update(update services.DownloadProgress) {
	key := update.Path
	if update.Status == "complete" {
		p.remove(key)
		return
	}
	if _, ok := p.downloads[key]; !ok {
		p.order = append(p.order, key)
	}
	prog := update
	p.downloads[key] = &prog
}

func (p *DownloadTracker) remove(key string) {
	if _, ok := p.downloads[key]; !ok {
		return
	}
	delete(p.downloads, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

func (p *DownloadTracker) Clear() {
	p.downloads = make(map[string]*services.DownloadProgress)
	p.order = nil
}

func (p *DownloadTracker) HasActive() bool {
	return len(p.downloads) > 0
}

func (p *DownloadTracker) View() string {
	if len(p.downloads) == 0 {
		return ""
	}

	var b strings.Builder
	for _, key := range p.order {
		prog := p.downloads[key]
		b.WriteString(styles.TextStyle.Render("⬇ " + prog.Title))
		b.WriteString("\n")

		if prog.Total > 0 {
			percent := progress.Percent(int(prog.Written), int(prog.Total))
			b.WriteString(ProgressBar(percent, p.width-4))
			b.WriteString(fmt.Sprintf(" %d%%", percent))
			b.WriteString("\n")
		} else if prog.Written > 0 {
			b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d KB", prog.Written/1024)))
			b.WriteString("\n")
		}

		if prog.Error != nil {
			b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", prog.Error)))
			b.WriteString("\n")
		}
	}
	return b.String()
}
