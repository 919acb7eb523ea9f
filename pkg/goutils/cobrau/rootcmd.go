/*
* Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cobrau

import (
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

// Returns log level selected by persistent flags of cmd
func LogLevel(cmd *cobra.Command) logger.TLogLevel {
	if ok, _ := cmd.Flags().GetBool("trace"); ok {
		return logger.LogLevelTrace
	}
	if ok, _ := cmd.Flags().GetBool("verbose"); ok {
		return logger.LogLevelVerbose
	}
	return logger.LogLevelInfo
}

// Prepares root command with version command and verbose/trace flags.
//
// args are os.Args like, args[0] is skipped.
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {

	var rootCmd = &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogLevel(cmd)
			logger.SetLogLevel(level)
			if level >= logger.LogLevelVerbose {
				logger.Verbose("log level:", level)
			}
		},
	}

	var versionCmd = &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd
}
