package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/salchaD-27/preflight-check/internal/artifact"
	"github.com/salchaD-27/preflight-check/internal/checklist"
	"github.com/salchaD-27/preflight-check/internal/config"
	"github.com/salchaD-27/preflight-check/internal/finding"
	"github.com/salchaD-27/preflight-check/internal/report"
	"github.com/salchaD-27/preflight-check/internal/rules"
)

var (
	auditFormat  string
	auditRules   string
	auditConfig  string
	auditStrict  bool
	auditVerbose bool
)

// auditCmd runs the readiness checklist against a project directory.
var auditCmd = &cobra.Command{
	Use:   "audit [path]",
	Short: "Audit a project's deployment artifacts for launch readiness",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		if auditVerbose {
			log.SetLevel(log.DebugLevel)
		}

		cfg, err := loadAuditConfig(cmd, root)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		out, failed, err := executeAudit(root, cfg)
		if err != nil {
			return err
		}
		fmt.Print(out)

		if cfg.Strict && failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

// loadAuditConfig merges the config file, PREFLIGHT_* env vars and any
// explicitly set flags, in that order.
func loadAuditConfig(cmd *cobra.Command, root string) (config.Config, error) {
	path := filepath.Join(root, config.DefaultFile)
	explicit := cmd.Flags().Changed("config")
	if explicit {
		path = auditConfig
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = auditFormat
	}
	if cmd.Flags().Changed("rules") {
		cfg.Rules = auditRules
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = auditStrict
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = auditVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// executeAudit assembles the checklist, evaluates it and renders the report
// in the requested format. It returns the rendered report and the number of
// FAIL verdicts for strict-mode gating.
func executeAudit(root string, cfg config.Config) (string, int, error) {
	checks := checklist.Builtin()

	if cfg.Rules != "" {
		rulePath := cfg.Rules
		if !filepath.IsAbs(rulePath) {
			rulePath = filepath.Join(root, rulePath)
		}
		custom, err := rules.Load(rulePath)
		if err != nil {
			return "", 0, err
		}
		log.Debugf("%d custom rule(s) loaded from %s", len(custom), rulePath)
		checks = append(checks, custom...)
	}

	findings := checklist.Run(checks, artifact.NewLoader(root))

	failed := 0
	for _, f := range findings {
		if f.Verdict == finding.Fail {
			failed++
		}
	}

	out, err := renderReport(findings, cfg.Format)
	if err != nil {
		return "", failed, err
	}
	return out, failed, nil
}

func renderReport(findings []finding.Finding, format string) (string, error) {
	switch strings.ToLower(format) {
	case config.FormatJSON:
		out, err := report.ExportJSON(findings)
		if err != nil {
			return "", err
		}
		return out + "\n", nil

	case config.FormatMarkdown:
		out, err := report.ExportMarkdown(findings)
		if err != nil {
			return "", err
		}
		return out + "\n", nil

	case config.FormatGHA:
		return report.ExportGitHubActions(findings)

	case config.FormatText:
		return report.ExportText(findings)

	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}

func init() {
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "text", "Output format: text|json|markdown|gha")
	auditCmd.Flags().StringVar(&auditRules, "rules", "", "HCL file with additional checklist rules; relative paths resolve against the audit path")
	auditCmd.Flags().StringVar(&auditConfig, "config", "", "Config file, relative to the working directory (default <path>/.preflight.yml)")
	auditCmd.Flags().BoolVar(&auditStrict, "strict", false, "Exit non-zero when any check fails")
	auditCmd.Flags().BoolVarP(&auditVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(auditCmd)
}
