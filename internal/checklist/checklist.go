// Package checklist defines the deployment readiness checks and evaluates
// them against project artifacts. Every check is a literal-substring
// predicate over one artifact's text; none of them parse the artifact's
// syntax. That keeps the audit fast and dependency-free, at the cost of
// false passes (marker inside a comment) and false fails (equivalent
// directive spelled differently) — a documented trade-off, not a bug.
package checklist

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/salchaD-27/preflight-check/internal/artifact"
	"github.com/salchaD-27/preflight-check/internal/finding"
)

// Check is one rule of the checklist: a set of marker substrings matched
// against a single artifact. A check passes when any marker occurs in the
// artifact content; otherwise it yields OnMiss (FAIL, or WARN for
// compatibility nits that should not block a deployment).
type Check struct {
	Name     string
	Label    string
	Artifact string
	AnyOf    []string
	Pass     string
	Miss     string
	OnMiss   finding.Verdict
	Desc     string
}

// Builtin returns the fixed checklist, in report order.
func Builtin() []Check {
	return []Check{
		{
			Name:     "port-exposure",
			Label:    "Port Configuration",
			Artifact: artifact.Dockerfile,
			AnyOf:    []string{"EXPOSE 8080"},
			Pass:     "8080 exposed",
			Miss:     "Missing EXPOSE 8080",
			OnMiss:   finding.Fail,
			Desc:     "The container build must publish the service port the platform routes traffic to (EXPOSE 8080).",
		},
		{
			Name:     "non-root-user",
			Label:    "Container Security",
			Artifact: artifact.Dockerfile,
			AnyOf:    []string{"USER nginx"},
			Pass:     "Non-root user 'nginx' enforced",
			Miss:     "Running as root",
			OnMiss:   finding.Fail,
			Desc:     "The final image must drop root and run the server as the unprivileged nginx user (USER nginx).",
		},
		{
			Name:     "listen-port",
			Label:    "Nginx Configuration",
			Artifact: artifact.NginxConf,
			AnyOf:    []string{"listen 8080;"},
			Pass:     "Listening on 8080",
			Miss:     "Nginx not configured for 8080",
			OnMiss:   finding.Fail,
			Desc:     "The server block must listen on the exposed port (listen 8080;), or the container accepts no traffic.",
		},
		{
			Name:     "secrets-env",
			Label:    "Secrets Management",
			Artifact: artifact.SupabaseClient,
			AnyOf:    []string{"import.meta.env"},
			Pass:     "Env variables detected",
			Miss:     "Potential leakage",
			OnMiss:   finding.Fail,
			Desc:     "The client must source credentials from build-time env vars (import.meta.env). Marker scan only, not a secret scanner: absence suggests hardcoded keys, presence does not prove safety.",
		},
		{
			Name:     "plays-inline",
			Label:    "Mobile Camera (playsInline)",
			Artifact: artifact.EntryPoint,
			AnyOf:    []string{"playsInline"},
			Miss:     "iOS Safari might block video autostart",
			OnMiss:   finding.Warn,
			Desc:     "Video elements should carry playsInline so iOS Safari autostarts the camera feed. Compatibility nicety, so a miss warns instead of failing.",
		},
		{
			Name:     "responsive-grid",
			Label:    "Mobile Responsiveness",
			Artifact: artifact.EntryPoint,
			AnyOf:    []string{"repeat(auto-fill", "repeat(auto-fit"},
			Pass:     "Dynamic grids detected",
			Miss:     "Hardcoded grids detected",
			OnMiss:   finding.Fail,
			Desc:     "Grid layouts should use repeat(auto-fill ...) or repeat(auto-fit ...) so columns reflow on small screens.",
		},
	}
}

// Run evaluates checks in order against artifacts read through the loader
// and returns one finding per check. Checks are independent: an unreadable
// artifact fails the checks bound to it and the rest still run.
func Run(checks []Check, loader *artifact.Loader) []finding.Finding {
	findings := make([]finding.Finding, 0, len(checks))
	for _, c := range checks {
		findings = append(findings, evaluate(c, loader))
	}
	return findings
}

func evaluate(c Check, loader *artifact.Loader) finding.Finding {
	f := finding.Finding{
		Check:    c.Name,
		Label:    c.Label,
		Artifact: c.Artifact,
	}

	content, err := loader.Load(c.Artifact)
	if err != nil {
		f.Verdict = finding.Fail
		f.Detail = fmt.Sprintf("artifact not readable: %v", err)
		return f
	}

	for _, marker := range c.AnyOf {
		if strings.Contains(content, marker) {
			f.Verdict = finding.Pass
			f.Detail = c.Pass
			log.Debugf("check %s: marker %q found in %s", c.Name, marker, c.Artifact)
			return f
		}
	}

	f.Verdict = c.OnMiss
	f.Detail = c.Miss
	return f
}
