package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/salchaD-27/preflight-check/internal/finding"
)

const (
	banner = "--- Pre-Flight Deployment Audit ---"
	footer = "--- Audit Complete ---"
)

// ExportText returns the default human-readable report: a banner line, one
// glyph-prefixed line per finding, and a closing line.
func ExportText(findings []finding.Finding) (string, error) {
	var b strings.Builder
	b.WriteString(banner + "\n")

	for _, f := range findings {
		b.WriteString(fmt.Sprintf("%s %s\n", glyph(f.Verdict), f.Message()))
	}

	b.WriteString(footer + "\n")
	return b.String(), nil
}

// ExportMarkdown returns a Markdown formatted report string.
func ExportMarkdown(findings []finding.Finding) (string, error) {
	var b strings.Builder
	b.WriteString("# Pre-Flight Audit Report\n\n")

	if len(findings) == 0 {
		b.WriteString("No checks were evaluated.\n")
		return b.String(), nil
	}

	for _, f := range findings {
		line := f.Label
		if f.Detail != "" {
			line += " (" + f.Detail + ")"
		}
		b.WriteString(fmt.Sprintf("- **[%s]** `%s`: %s\n", f.Verdict, f.Artifact, line))
	}

	return b.String(), nil
}

// ExportJSON returns the JSON formatted report string.
func ExportJSON(findings []finding.Finding) (string, error) {
	data, err := json.MarshalIndent(findings, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportGitHubActions returns a GitHub Actions annotation formatted string.
func ExportGitHubActions(findings []finding.Finding) (string, error) {
	var b strings.Builder
	for _, f := range findings {
		level := ""
		switch f.Verdict {
		case finding.Fail:
			level = "error"
		case finding.Warn:
			level = "warning"
		default:
			level = "notice"
		}
		b.WriteString(fmt.Sprintf("::%s file=%s::%s\n", level, f.Artifact, escapeGHA(f.Message())))
	}
	return b.String(), nil
}

func glyph(v finding.Verdict) string {
	switch v {
	case finding.Fail:
		return "🛑"
	case finding.Warn:
		return "⚠️"
	default:
		return "✅"
	}
}

// escapeGHA escapes special characters for GitHub Actions annotations
// GitHub Actions supports annotations using special logs:
// ::error file=app.js,line=1,col=5::Missing semicolon
// ::warning file=app.js,line=2,col=1::Deprecated function usage
// ::notice file=app.js,line=3,col=1::Consider refactoring
func escapeGHA(msg string) string {
	replacements := []struct{ old, new string }{
		{"%", "%25"},
		{"\r", "%0D"},
		{"\n", "%0A"},
		{":", "%3A"},
		{",", "%2C"},
	}
	for _, r := range replacements {
		msg = strings.ReplaceAll(msg, r.old, r.new)
	}
	return msg
}
