package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kerbaras/lectures/pkg/app/components"
	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/spf13/cobra"
)

func newExamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exams [subject]",
		Short: "List exam subjects, or the chapters and exams of a subject",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				exams := a.Lectures.Catalog().Exams
				if exams == nil {
					return fmt.Errorf("exams: %w", data.ErrDataUnavailable)
				}
				t := newTable("", "Subject", "Chapters")
				for _, s := range exams.Subjects {
					t.Row(components.SubjectIcon(s.Name), s.Name, strconv.Itoa(len(s.Chapters)))
				}
				fmt.Fprintf(out, "\n📝 %s\n\n%s\n", a.Tr.T(locale.KeyHomeExams), t.Render())
				return nil
			}

			subject, err := a.Lectures.Subject(args[0])
			if err != nil {
				return err
			}
			var b strings.Builder
			fmt.Fprintf(&b, "\n%s %s\n", components.SubjectIcon(subject.Name), a.Tr.T(locale.KeySubjectExams, subject.Name))
			for _, chapter := range subject.Chapters {
				fmt.Fprintf(&b, "\n📂 %s\n", chapter.Name)
				if len(chapter.Exams) == 0 {
					fmt.Fprintf(&b, "   %s\n", a.Tr.T(locale.KeyNoExams))
				}
				for _, exam := range chapter.Exams {
					fmt.Fprintf(&b, "   📄 %s\n", exam.Title)
					if exam.Description != "" {
						fmt.Fprintf(&b, "      %s\n", exam.Description)
					}
					fmt.Fprintf(&b, "      ⬇ %s\n", exam.DownloadURL)
				}
			}
			fmt.Fprint(out, b.String())
			return nil
		},
	}
}
