package cmd

import (
	"fmt"

	"github.com/kerbaras/lectures/pkg/services"
	"github.com/spf13/cobra"
)

func newDownloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "download [url...]",
		Short: "Download material or exam files",
		Long:  "Download material or exam files into download.dir, up to three at a time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()

			items := make([]services.DownloadItem, 0, len(args))
			for _, u := range args {
				items = append(items, services.DownloadItem{Title: u, URL: u})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "📥 Downloading %d file(s) to %s\n", len(items), a.Downloader.Dir())

			// Listen for progress
			done := make(chan struct{})
			go func() {
				defer close(done)
				for progress := range a.Downloader.GetProgressChannel() {
					switch progress.Status {
					case "complete":
						fmt.Fprintf(out, "  ✅ %s\n", progress.Path)
					case "error":
						fmt.Fprintf(out, "  ❌ %s: %v\n", progress.Title, progress.Error)
					}
				}
			}()

			err = a.Downloader.DownloadAll(cmd.Context(), items)
			a.Downloader.Close()
			<-done
			if err != nil {
				return fmt.Errorf("download failed: %w", err)
			}
			fmt.Fprintln(out, "\n✅ Download complete!")
			return nil
		},
	}
}
