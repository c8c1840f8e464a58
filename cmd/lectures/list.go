package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/lectures/pkg/app"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [course]",
		Short: "List courses, or the teachers of a course",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			if len(args) == 0 {
				return listCourses(cmd, a)
			}
			return listTeachers(cmd, a, args[0])
		},
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

func listCourses(cmd *cobra.Command, a *app.App) error {
	catalog := a.Lectures.Catalog()
	t := newTable("Key", "Title", "Teachers", "Progress")
	for _, course := range catalog.Courses {
		if course.Teachers == nil {
			t.Row(course.Key, course.Title, "-", a.Tr.T(locale.KeyDataUnavailable))
			continue
		}
		summary := a.Lectures.Progress().Aggregate(course)
		t.Row(course.Key, course.Title, strconv.Itoa(len(course.Teachers)), a.Tr.T(locale.KeyProgressCourse, strconv.Itoa(summary.Percent)))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n🎓 Courses (%d)\n\n", len(catalog.Courses))
	fmt.Fprintln(out, t.Render())
	return nil
}

func listTeachers(cmd *cobra.Command, a *app.App, courseKey string) error {
	course, err := a.Lectures.Course(courseKey)
	if err != nil {
		return err
	}

	t := newTable("ID", "Name", "Subject", "Classes", "Progress")
	for i := range course.Teachers {
		teacher := &course.Teachers[i]
		summary := a.Lectures.Progress().TeacherSummary(teacher)
		t.Row(
			teacher.ID.String(),
			teacher.Name,
			teacher.Subject,
			strconv.Itoa(len(teacher.Classes)),
			a.Tr.Progress(summary.Percent, summary.Completed, summary.Total),
		)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n🎬 %s\n\n", course.Title)
	fmt.Fprintln(out, t.Render())
	return nil
}
