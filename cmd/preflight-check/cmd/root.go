package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "preflight-check",
	Short: "Pre-deployment readiness auditor for containerized web apps",
	Long: `preflight-check statically inspects a project's deployment artifacts
(container build file, web-server config, client and entry sources) and
reports PASS/FAIL/WARN verdicts against a checklist of launch best
practices: exposed port, non-root execution, server listen port, secret
sourcing, mobile camera compatibility and responsive layout.

Checks are literal-substring heuristics: fast, dependency-free, and
deliberately not a parser of the inspected files.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
