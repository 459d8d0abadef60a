package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/hanscan/internal/domain/script"
)

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "List the named script blocks usable with --script",
	RunE:  runScripts,
}

func runScripts(c *cobra.Command, args []string) error {
	out := c.OutOrStdout()
	fmt.Fprintf(out, "%s⚡ named script blocks%s\n", colorBold, colorReset)
	for _, name := range script.Names() {
		rng, _ := script.Named(name)
		marker := "  "
		if name == script.DefaultName {
			marker = "* "
		}
		fmt.Fprintf(out, "  %s%s%-10s%s U+%04X-U+%04X\n", marker, colorCyan, name, colorReset, rng.Lo, rng.Hi)
	}
	fmt.Fprintf(out, "  %s(* default; hex bounds like 4E00-9FA5 also accepted)%s\n", colorGray, colorReset)
	return nil
}
