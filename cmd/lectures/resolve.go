package cmd

import (
	"fmt"

	"github.com/kerbaras/lectures/pkg/config"
	"github.com/kerbaras/lectures/pkg/video"
	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var openStream, copyStream bool
	resolveCmd := &cobra.Command{
		Use:   "resolve [lecture-url]",
		Short: "Print the video id and proxied stream URL of a lecture link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			resolver := video.NewResolver(cfg.Proxy.BaseURL)
			id, stream, err := resolver.Resolve(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "🆔 %s\n▶️  %s\n", id, stream)

			if !openStream && !copyStream {
				return nil
			}
			a, err := openApp(cmd, true)
			if err != nil {
				return err
			}
			defer a.Close()
			if copyStream {
				if err := a.Lectures.Player().Copy(stream); err != nil {
					return err
				}
				fmt.Fprintln(out, "📋 Copied to clipboard")
			}
			if openStream {
				return a.Lectures.Player().Open(stream)
			}
			return nil
		},
	}
	resolveCmd.Flags().BoolVarP(&openStream, "open", "o", false, "open the stream in the default browser")
	resolveCmd.Flags().BoolVarP(&copyStream, "copy", "y", false, "copy the stream URL to the clipboard")
	return resolveCmd
}
