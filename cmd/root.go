package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/bnema/employee-pairs-cli/internal/config"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ep",
		Short:         "Employee pairs (ep): find who worked together the longest",
		Long:          "ep reads employee project assignments (CSV, TOML or YAML) and reports the pair of employees who worked together on common projects for the longest time.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := newApp()

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configPath, "config", "", "Config file (default $HOME/.config/ep/config.toml)")
	flags.BoolVarP(&app.verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.BoolVarP(&app.quiet, "quiet", "q", false, "Do not draw the progress spinner")
	flags.StringP("file", "f", config.DefaultInputPath, "Work periods file")
	flags.String("format", "", "Input format: csv, toml or yaml (default from file extension)")
	flags.Bool("parallel", false, "Aggregate project groups in parallel")
	flags.Int("workers", 0, "Parallel workers (default number of CPUs)")
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")

	bindings := map[string]string{
		config.KeyInputPath:   "file",
		config.KeyInputFormat: "format",
		config.KeyParallel:    "parallel",
		config.KeyWorkers:     "workers",
		config.KeyLogLevel:    "log-level",
	}
	for key, flag := range bindings {
		if err := app.viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
				return err
			}
			return rootCmd
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLongestCmd(app),
		newPairsCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
