package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magnusbaeck/shunit-runner/internal/discover"
	"github.com/magnusbaeck/shunit-runner/internal/logging"
)

const (
	exitCodeNormal = 0
	exitCodeError  = 1
)

var defaultKeptEnvVars = []string{
	"PATH",
	"HOME",
}

func Execute(version string, stdout, stderr io.Writer) int {
	return execute(version, os.Args[1:], stdout, stderr)
}

func execute(version string, args []string, stdout, stderr io.Writer) int {
	logging.SetOutput(stderr)
	log := logging.MustGetLogger()
	viper.Set("logger", log)

	// Initialize config
	viper.SetConfigName("shunit-runner")        // name of config file (without extension)
	viper.AddConfigPath("/etc/shunit-runner/")  // path to look for the config file in
	viper.AddConfigPath("$HOME/.shunit-runner") // call multiple times to add many search paths
	viper.AddConfigPath(".")                    // optionally look for config in the working directory

	// Setup default values
	viper.SetDefault("loglevel", "WARNING")
	viper.SetDefault("shell", "sh")
	viper.SetDefault("pattern", discover.DefaultPattern)
	viper.SetDefault("timeout", 0)
	viper.SetDefault("keep-envs", defaultKeptEnvVars)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Errorf("Error processing config file: %v", err)
			return exitCodeError
		}
	}

	rootCmd := makeRootCmd(version)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		prefixedUserError(stderr, "error: %v", err)
		return exitCodeError
	}

	return exitCodeNormal
}

func makeRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shunit-runner",
		Short: "Run shunit test scripts and report their tests",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLevel(viper.GetString("loglevel"))
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.InitDefaultVersionFlag()

	rootCmd.PersistentFlags().String("loglevel", "WARNING", "Set the desired level of logging (one of: CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG). The stderr of suite scripts is logged at WARNING, so a level above that hides it.")
	_ = viper.BindPFlag("loglevel", rootCmd.PersistentFlags().Lookup("loglevel"))

	rootCmd.AddCommand(makeRunCmd())
	rootCmd.AddCommand(makeCountCmd())

	return rootCmd
}

// prefixedUserError prints an error message to w and prefixes it with
// the name of the program file (e.g. "shunit-runner: something bad
// happened.").
func prefixedUserError(w io.Writer, format string, a ...interface{}) {
	basename := filepath.Base(os.Args[0])
	message := fmt.Sprintf(format, a...)
	if strings.HasSuffix(message, "\n") {
		fmt.Fprintf(w, "%s: %s", basename, message)
	} else {
		fmt.Fprintf(w, "%s: %s\n", basename, message)
	}
}
