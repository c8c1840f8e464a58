package components

import (
	"strings"

	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
)

// ChapterList renders a subject's chapters with their exams, collapsible
// like ClassList.
type ChapterList struct {
	Subject  *data.Subject
	Expanded map[int]bool
	Cursor   Cursor
	Width    int
	Height   int
}

func NewChapterList(subject *data.Subject) *ChapterList {
	l := &ChapterList{
		Subject:  subject,
		Expanded: make(map[int]bool),
		Width:    80,
		Height:   20,
	}
	l.Cursor.SetLen(len(l.Rows()))
	return l
}

func (l *ChapterList) Rows() []Row {
	if l.Subject == nil {
		return nil
	}
	var rows []Row
	for i, chapter := range l.Subject.Chapters {
		rows = append(rows, Row{Group: i, Entry: -1})
		if l.Expanded[i] {
			for j := range chapter.Exams {
				rows = append(rows, Row{Group: i, Entry: j})
			}
		}
	}
	return rows
}

func (l *ChapterList) Selected() (Row, bool) {
	rows := l.Rows()
	if l.Cursor.Index < 0 || l.Cursor.Index >= len(rows) {
		return Row{}, false
	}
	return rows[l.Cursor.Index], true
}

// SelectedExam returns the exam under the cursor, if the cursor is on one.
func (l *ChapterList) SelectedExam() (data.Exam, bool) {
	row, ok := l.Selected()
	if !ok || row.IsHeader() {
		return data.Exam{}, false
	}
	return l.Subject.Chapters[row.Group].Exams[row.Entry], true
}

func (l *ChapterList) ToggleExpand() {
	row, ok := l.Selected()
	if !ok {
		return
	}
	l.Expanded[row.Group] = !l.Expanded[row.Group]
	rows := l.Rows()
	l.Cursor.SetLen(len(rows))
	for i, r := range rows {
		if r.Group == row.Group && r.IsHeader() {
			l.Cursor.Index = i
			break
		}
	}
}

func (l *ChapterList) Next() { l.Cursor.Next() }
func (l *ChapterList) Prev() { l.Cursor.Prev() }

func (l *ChapterList) View(tr *locale.Translator) string {
	if l.Subject == nil || len(l.Subject.Chapters) == 0 {
		return styles.MutedStyle.Render(tr.T(locale.KeyNoExams))
	}

	rows := l.Rows()
	start, end := Window(l.Cursor.Index, len(rows), l.Height)

	var b strings.Builder
	for i := start; i < end; i++ {
		row := rows[i]
		chapter := l.Subject.Chapters[row.Group]

		var line string
		if row.IsHeader() {
			chevron := "▸"
			if l.Expanded[row.Group] {
				chevron = "▾"
			}
			line = chevron + " " + styles.TitleStyle.UnsetMarginBottom().Render(chapter.Name)
			if l.Expanded[row.Group] && len(chapter.Exams) == 0 {
				line += "\n    " + styles.MutedStyle.Render(tr.T(locale.KeyNoExams))
			}
		} else {
			exam := chapter.Exams[row.Entry]
			line = "    📄 " + styles.TextStyle.Render(exam.Title)
			if exam.Description != "" {
				line += " " + styles.MutedStyle.Render("- "+exam.Description)
			}
			line += "  " + styles.LinkStyle.Render("⬇ "+tr.T(locale.KeyDownload))
		}

		if i == l.Cursor.Index {
			line = styles.SelectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
