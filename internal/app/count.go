package app

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magnusbaeck/shunit-runner/internal/app/run"
	"github.com/magnusbaeck/shunit-runner/internal/discover"
)

func makeCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "count [<flags>] <path>...",
		Short:  "Estimate the number of tests in shunit suites",
		PreRun: bindPatternFlag,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run.Count(args, viper.GetString("pattern"), cmd.OutOrStdout())
		},
		Args: validatePathArgs,
	}

	cmd.Flags().String("pattern", discover.DefaultPattern, "Set the glob pattern that selects the suite scripts in directories given as arguments.")

	return cmd
}
