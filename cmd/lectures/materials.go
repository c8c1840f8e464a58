package cmd

import (
	"fmt"

	"github.com/kerbaras/lectures/pkg/data"
	"github.com/kerbaras/lectures/pkg/locale"
	"github.com/spf13/cobra"
)

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials [tab]",
		Short: "List study materials, optionally for one tab",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			catalog := a.Lectures.Catalog()
			if catalog.Materials == nil {
				return fmt.Errorf("materials: %w", data.ErrDataUnavailable)
			}

			tabs := catalog.MaterialTabs
			if len(args) == 1 {
				tabs = []string{args[0]}
			}

			t := newTable("Tab", "Title", "Subject", "Download")
			for _, tab := range tabs {
				label := tab
				if key, ok := locale.TabKey(tab); ok {
					label = a.Tr.T(key)
				}
				for _, m := range catalog.Materials[tab] {
					t.Row(label, m.Title, m.Subject, m.DownloadURL)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n📚 %s\n\n%s\n", a.Tr.T(locale.KeyHomeMaterials), t.Render())
			return nil
		},
	}
}
