package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eucaby/reqparse/internal/config"
	"github.com/eucaby/reqparse/internal/logging"
)

// Exit codes.
const (
	ExitInvalidArguments = 2
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE
// handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// app carries state shared by the subcommands once the root command has
// loaded the configuration.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "reqparse",
		Short: "Inspect and exercise Eucaby request argument sets",
		Long: `reqparse lists the argument sets of the Eucaby API endpoints and runs
them against sample query strings and JSON bodies.

Configuration is read from --config, $REQPARSE_CONFIG or ./reqparse.yaml,
then overridden by REQPARSE_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg

			opts := cfg.LoggingOptions()
			opts.Output = cmd.ErrOrStderr()
			logging.Init(opts)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./reqparse.yaml)")

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newCheckCommand(a))

	return cmd
}
