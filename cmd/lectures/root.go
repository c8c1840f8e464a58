package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/kerbaras/lectures/pkg/app"
	"github.com/kerbaras/lectures/pkg/config"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lectures",
		Short: "Browse recorded lectures, study materials and past exams",
		Long:  "Browse recorded lectures by teacher, track your progress and find study materials and past exams, from a TUI or the command line",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Launch TUI by default
			a, err := openApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newListCmd(),
		newProgressCmd(),
		newCompleteCmd(),
		newResolveCmd(),
		newMaterialsCmd(),
		newExamsCmd(),
		newDownloadCmd(),
		newExportCmd(),
	)
	return rootCmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// openApp loads the configuration from the command flags and builds the
// application services. CLI commands log to stderr as well as the log file.
func openApp(cmd *cobra.Command, console bool) (*app.App, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	var opts []app.Option
	if console {
		opts = append(opts, app.WithConsoleLogs())
	}
	return app.New(cmd.Context(), cfg, opts...)
}
