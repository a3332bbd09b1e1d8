package cmd

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/salchaD-27/preflight-check/internal/checklist"
)

// checksCmd prints the built-in checklist so teams can see what an audit
// covers without running one.
var checksCmd = &cobra.Command{
	Use:   "checks",
	Short: "List the built-in readiness checks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for i, c := range checklist.Builtin() {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s  (%s, %s on miss)\n", c.Name, c.Artifact, c.OnMiss)
			for _, line := range strings.Split(wordwrap.WrapString(c.Desc, 72), "\n") {
				fmt.Printf("    %s\n", line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checksCmd)
}
