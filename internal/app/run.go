package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magnusbaeck/shunit-runner/internal/app/run"
	"github.com/magnusbaeck/shunit-runner/internal/discover"
	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

func makeRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "run [<flags>] <path>...",
		Short:  "Run shunit suites and report their tests",
		PreRun: bindPatternFlag,
		RunE:   runRun,
		Args:   validatePathArgs,
	}

	cmd.Flags().String("shell", "sh", "Set the command that interprets the suite scripts. It's split into words like a shell would do, e.g. \"bash -e\".")
	_ = viper.BindPFlag("shell", cmd.Flags().Lookup("shell"))

	cmd.Flags().String("pattern", discover.DefaultPattern, "Set the glob pattern that selects the suite scripts in directories given as arguments.")

	cmd.Flags().Duration("timeout", 0, "Abort a suite that runs longer than this (duration, 0 means no limit).")
	_ = viper.BindPFlag("timeout", cmd.Flags().Lookup("timeout"))

	cmd.Flags().Bool("clean-env", false, "Run the suites with only the environment variables selected with --keep-env.")
	_ = viper.BindPFlag("clean-env", cmd.Flags().Lookup("clean-env"))

	cmd.Flags().StringSlice("keep-env", defaultKeptEnvVars, "Add this environment variable to the list of variables that will be preserved from the calling process's environment when --clean-env is used.")
	_ = viper.BindPFlag("keep-envs", cmd.Flags().Lookup("keep-env"))

	cmd.Flags().Bool("quiet", false, "Omit the per-test results and the summary.")
	_ = viper.BindPFlag("quiet", cmd.Flags().Lookup("quiet"))

	cmd.Flags().Bool("progress", false, "Show a progress bar on stderr.")
	_ = viper.BindPFlag("progress", cmd.Flags().Lookup("progress"))

	cmd.Flags().String("report", "", "Write a YAML report of all results to this file.")
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))

	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := run.New(
		args,
		viper.GetString("pattern"),
		viper.GetString("shell"),
		viper.GetDuration("timeout"),
		viper.GetBool("clean-env"),
		viper.GetStringSlice("keep-envs"),
		viper.GetBool("quiet"),
		viper.GetBool("progress"),
		viper.GetString("report"),
		cmd.OutOrStdout(),
		cmd.ErrOrStderr(),
		viper.Get("logger").(logging.Logger),
	)

	return r.Run(ctx)
}

// bindPatternFlag binds the --pattern flag of the command being run.
// Both run and count have one and only one of them may be bound.
func bindPatternFlag(cmd *cobra.Command, args []string) {
	_ = viper.BindPFlag("pattern", cmd.Flags().Lookup("pattern"))
}

func validatePathArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return errors.New("required argument 'path' not provided, try --help")
	}
	for _, arg := range args {
		_, err := os.Stat(arg)
		if os.IsNotExist(err) {
			return fmt.Errorf("path %q does not exist, try --help", arg)
		}
	}
	return nil
}
