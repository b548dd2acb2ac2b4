package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/cheatrc/cmd/cheatrc/commands"
	"github.com/walteh/cheatrc/pkg/log"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cheatrc",
		Short: "Rewrite game config templates with tuned values",
		Long: `cheatrc rewrites a directory of game configuration templates,
replacing @tag|default@ macro spans with values computed from a rule
table, and writes the results into the live game directory. Encoding
and line endings of every file are preserved exactly.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Structured logs stay quiet unless --debug; the console
			// layer handles normal progress output
			zlevel := zerolog.Disabled
			if debug {
				zlevel = zerolog.DebugLevel
			}
			logger := log.New(os.Stdout, zlevel)
			zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(zlevel)

			ctx := cmd.Context()
			ctx = log.NewContext(ctx, logger)
			ctx = zlog.WithContext(ctx)
			cmd.SetContext(ctx)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewInjectCmd(newRootOpts),
		commands.NewListCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.New(os.Stdout, zerolog.Disabled).Validation(false, "Run failed", err)
		os.Exit(1)
	}
}
