package components

import (
	"strings"

	"github.com/kerbaras/lectures/pkg/app/styles"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/kerbaras/lectures/pkg/progress"
)

// Row is one visible line of a collapsible list: a group header, or an
// entry inside an expanded group when Entry >= 0.
type Row struct {
	Group int
	Entry int
}

func (r Row) IsHeader() bool {
	return r.Entry < 0
}

// ClassList renders a teacher's classes with their lectures. Classes start
// collapsed.
type ClassList struct {
	Teacher  *data.Teacher
	Expanded map[int]bool
	Cursor   Cursor
	Width    int
	Height   int
}

func NewClassList(teacher *data.Teacher) *ClassList {
	l := &ClassList{
		Teacher:  teacher,
		Expanded: make(map[int]bool),
		Width:    80,
		Height:   20,
	}
	l.Cursor.SetLen(len(l.Rows()))
	return l
}

func (l *ClassList) Rows() []Row {
	if l.Teacher == nil {
		return nil
	}
	var rows []Row
	for i, class := range l.Teacher.Classes {
		rows = append(rows, Row{Group: i, Entry: -1})
		if l.Expanded[i] {
			for j := range class.Lectures {
				rows = append(rows, Row{Group: i, Entry: j})
			}
		}
	}
	return rows
}

func (l *ClassList) Selected() (Row, bool) {
	rows := l.Rows()
	if l.Cursor.Index < 0 || l.Cursor.Index >= len(rows) {
		return Row{}, false
	}
	return rows[l.Cursor.Index], true
}

// ToggleExpand opens or closes the class under the cursor and keeps the
// cursor on its header.
func (l *ClassList) ToggleExpand() {
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

func (l *ClassList) Next() { l.Cursor.Next() }
func (l *ClassList) Prev() { l.Cursor.Prev() }

func (l *ClassList) View(checker progress.Checker, tr *locale.Translator) string {
	if l.Teacher == nil || len(l.Teacher.Classes) == 0 {
		return styles.MutedStyle.Render(tr.T(locale.KeyNoLectures))
	}

	rows := l.Rows()
	start, end := Window(l.Cursor.Index, len(rows), l.Height)

	var b strings.Builder
	for i := start; i < end; i++ {
		row := rows[i]
		class := l.Teacher.Classes[row.Group]
		selected := i == l.Cursor.Index

		var line string
		if row.IsHeader() {
			chevron := "▸"
			if l.Expanded[row.Group] {
				chevron = "▾"
			}
			s := progress.ClassSummary(checker, l.Teacher.ID, row.Group, class)
			line = chevron + " " + styles.TitleStyle.UnsetMarginBottom().Render(class.Name) + "  " +
				styles.MutedStyle.Render(tr.Progress(s.Percent, s.Completed, s.Total))
			if l.Expanded[row.Group] && len(class.Lectures) == 0 {
				line += "\n    " + styles.MutedStyle.Render(tr.T(locale.KeyNoLectures))
			}
		} else {
			lecture := class.Lectures[row.Entry]
			mark := styles.MutedStyle.Render("○")
			if checker.IsCompleted(l.Teacher.ID, row.Group, lecture.Title) {
				mark = styles.StatusCompleted.Render("✓")
			}
			line = "    " + mark + " ▶ " + styles.TextStyle.Render(lecture.Title)
		}

		if selected {
			line = styles.SelectedStyle.Render("›") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
