package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbhb/searchpath/internal/cliconfig"
	"github.com/tbhb/searchpath/pkg/logx"
)

var (
	// Used for flags.
	flagConfig string

	rootCmd = &cobra.Command{
		Use:           "searchpath",
		Short:         "Locate files across an ordered list of directories",
		Long:          "searchpath - locate files across an ordered list of directories, with provenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path (optional)")

	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := cliconfig.Initialize(flagConfig); err != nil {
		fmt.Println("failed to initialize config")
		cobra.CheckErr(err)
	}

	if err := logx.Initialize(cliconfig.Get().Log); err != nil {
		fmt.Println(err)
		cobra.CheckErr(err)
	}
}
