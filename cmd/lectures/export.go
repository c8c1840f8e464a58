package cmd

import (
	"fmt"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [course] [teacher-id]",
		Short: "Export a teacher's syllabus with your progress as an EPUB",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			course, teacher, err := a.Lectures.Teacher(args[0], data.TeacherID(args[1]))
			if err != nil {
				return err
			}
			path, err := a.Syllabus.Export(course, teacher, a.Lectures.Progress())
			if err != nil {
				return fmt.Errorf("EPUB generation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "📖 EPUB created: %s\n", path)
			return nil
		},
	}
}
