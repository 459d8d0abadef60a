package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "hanscan",
	Short:         "hanscan finds hard-coded script text in JS/TS trees",
	Long:          "Scans .js/.jsx/.ts/.tsx sources for string literals, template segments, and JSX text containing code points in a configured script range (CJK ideographs by default).",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scriptsCmd)
}
