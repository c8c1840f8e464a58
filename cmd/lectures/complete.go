package cmd

import (
	"fmt"
	"strconv"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	completeCmd := &cobra.Command{
		Use:   "complete [course] [teacher-id] [class-index] [lecture-title]",
		Short: "Mark a lecture as completed",
		Long:  "Mark a lecture as completed. With --toggle a completed lecture is marked as not completed instead.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			classIndex, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid class index %q", args[2])
			}
			toggle, _ := cmd.Flags().GetBool("toggle")

			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			courseKey, teacherID, title := args[0], data.TeacherID(args[1]), args[3]
			out := cmd.OutOrStdout()

			if toggle {
				completed, err := a.Lectures.Toggle(courseKey, teacherID, classIndex, title)
				if err != nil {
					return err
				}
				if completed {
					fmt.Fprintf(out, "✅ %s completed\n", title)
				} else {
					fmt.Fprintf(out, "↩️  %s marked as not completed\n", title)
				}
			} else {
				marked, err := a.Lectures.Mark(courseKey, teacherID, classIndex, title)
				if err != nil {
					return err
				}
				if marked {
					fmt.Fprintf(out, "✅ %s completed\n", title)
				} else {
					fmt.Fprintf(out, "ℹ️  %s was already completed\n", title)
				}
			}

			if a.Lectures.Progress().SessionOnly() {
				return fmt.Errorf("progress could not be saved")
			}
			return nil
		},
	}
	completeCmd.Flags().BoolP("toggle", "t", false, "flip the completion state instead of marking")
	return completeCmd
}
