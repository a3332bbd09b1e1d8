// Package rules loads custom checklist rules from HCL files. A rule adds a
// literal-substring check evaluated with the same engine and verdict model
// as the built-ins; rule files extend the checklist, they never change what
// the built-in checks mean.
package rules

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/salchaD-27/preflight-check/internal/checklist"
	"github.com/salchaD-27/preflight-check/internal/finding"
)

// Load parses a rule file and returns its rules as checklist checks, in
// file order. Any syntax or schema problem fails the whole load: a rule
// file is tool input, so a broken one aborts the invocation instead of
// turning into a report line.
//
// Rule syntax:
//
//	rule "cdn-cache" {
//	  label    = "CDN Caching"             # optional, defaults to the rule name
//	  artifact = "nginx.conf"              # required, path relative to the audit root
//	  any_of   = ["proxy_cache_path"]      # required, at least one marker substring
//	  pass     = "Edge caching configured" # optional detail on PASS
//	  fail     = "No proxy cache in place" # optional detail on miss
//	  severity = "WARN"                    # optional, FAIL (default) or WARN
//	}
func Load(path string) ([]checklist.Check, error) {
	parser := hclparse.NewParser()

	file, diag := parser.ParseHCLFile(path)
	if diag.HasErrors() {
		return nil, fmt.Errorf("parse rules file %s: %s", path, diag.Error())
	}

	content, _, diag := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "rule", LabelNames: []string{"name"}},
		},
	})
	if diag.HasErrors() {
		return nil, fmt.Errorf("parse rules file %s: %s", path, diag.Error())
	}

	var checks []checklist.Check
	seen := make(map[string]bool)

	for _, block := range content.Blocks {
		name := block.Labels[0]
		if name == "" {
			return nil, fmt.Errorf("rules file %s: rule with empty name", path)
		}
		if seen[name] {
			return nil, fmt.Errorf("rules file %s: duplicate rule %q", path, name)
		}
		seen[name] = true

		check, err := decodeRule(name, block.Body)
		if err != nil {
			return nil, fmt.Errorf("rules file %s: rule %q: %w", path, name, err)
		}
		checks = append(checks, check)
	}

	return checks, nil
}

func decodeRule(name string, body hcl.Body) (checklist.Check, error) {
	check := checklist.Check{
		Name:   name,
		Label:  name,
		OnMiss: finding.Fail,
	}

	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return check, fmt.Errorf("%s", diags.Error())
	}

	for attrName, attr := range attrs {
		val, diag := attr.Expr.Value(nil)
		if diag.HasErrors() {
			return check, fmt.Errorf("attribute %q: %s", attrName, diag.Error())
		}

		switch attrName {
		case "label":
			s, err := stringValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			check.Label = s
		case "artifact":
			s, err := stringValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			check.Artifact = s
		case "pass":
			s, err := stringValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			check.Pass = s
		case "fail":
			s, err := stringValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			check.Miss = s
		case "severity":
			s, err := stringValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			verdict, err := parseSeverity(s)
			if err != nil {
				return check, err
			}
			check.OnMiss = verdict
		case "any_of":
			markers, err := stringListValue(val)
			if err != nil {
				return check, fmt.Errorf("attribute %q: %w", attrName, err)
			}
			check.AnyOf = markers
		default:
			return check, fmt.Errorf("unsupported attribute %q", attrName)
		}
	}

	if check.Artifact == "" {
		return check, fmt.Errorf("missing required attribute %q", "artifact")
	}
	if len(check.AnyOf) == 0 {
		return check, fmt.Errorf("%q must list at least one marker", "any_of")
	}

	return check, nil
}

func parseSeverity(s string) (finding.Verdict, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FAIL":
		return finding.Fail, nil
	case "WARN":
		return finding.Warn, nil
	default:
		return "", fmt.Errorf("severity must be FAIL or WARN, got %q", s)
	}
}

func stringValue(val cty.Value) (string, error) {
	if val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("expected a string")
	}
	return val.AsString(), nil
}

func stringListValue(val cty.Value) ([]string, error) {
	if val.IsNull() || !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of strings")
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, fmt.Errorf("expected a list of strings")
		}
		if elem.AsString() == "" {
			return nil, fmt.Errorf("markers must be non-empty")
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
