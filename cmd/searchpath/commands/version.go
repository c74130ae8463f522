package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tbhb/searchpath/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build commit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "searchpath %s (%s)\n", version.Number(), version.Commit())
	},
}
