package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/spf13/cobra"
)

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress [course] [teacher-id]",
		Short: "Show completion of every class of a teacher",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			_, teacher, err := a.Lectures.Teacher(args[0], data.TeacherID(args[1]))
			if err != nil {
				return err
			}

			columns := []table.Column{
				{Title: "#", Width: 3},
				{Title: "Class", Width: 40},
				{Title: "Lectures", Width: 10},
				{Title: "Progress", Width: 24},
			}

			store := a.Lectures.Progress()
			rows := []table.Row{}
			for i, class := range teacher.Classes {
				summary := store.ClassSummary(teacher.ID, i, class)
				rows = append(rows, table.Row{
					fmt.Sprintf("%d", i),
					truncateString(class.Name, 38),
					fmt.Sprintf("%d", len(class.Lectures)),
					a.Tr.Progress(summary.Percent, summary.Completed, summary.Total),
				})
			}

			t := table.New(
				table.WithColumns(columns),
				table.WithRows(rows),
				table.WithFocused(false),
				table.WithHeight(len(rows)),
			)

			s := table.DefaultStyles()
			s.Header = s.Header.
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)
			s.Selected = s.Cell
			t.SetStyles(s)

			total := store.TeacherSummary(teacher)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n👤 %s (%s)\n\n", teacher.Name, a.Tr.Progress(total.Percent, total.Completed, total.Total))
			fmt.Fprintln(out, t.View())
			return nil
		},
	}
}

func truncateString(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
