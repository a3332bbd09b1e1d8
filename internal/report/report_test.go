package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salchaD-27/preflight-check/internal/finding"
)

func sampleFindings() []finding.Finding {
	return []finding.Finding{
		{
			Check:    "port-exposure",
			Label:    "Port Configuration",
			Artifact: "Dockerfile",
			Verdict:  finding.Pass,
			Detail:   "8080 exposed",
		},
		{
			Check:    "non-root-user",
			Label:    "Container Security",
			Artifact: "Dockerfile",
			Verdict:  finding.Fail,
			Detail:   "Running as root",
		},
		{
			Check:    "plays-inline",
			Label:    "Mobile Camera (playsInline)",
			Artifact: "index.tsx",
			Verdict:  finding.Warn,
			Detail:   "iOS Safari might block video autostart",
		},
	}
}

func TestExportText(t *testing.T) {
	out, err := ExportText(sampleFindings())
	require.NoError(t, err)

	want := "--- Pre-Flight Deployment Audit ---\n" +
		"✅ Port Configuration: PASS (8080 exposed)\n" +
		"🛑 Container Security: FAIL (Running as root)\n" +
		"⚠️ Mobile Camera (playsInline): WARNING (iOS Safari might block video autostart)\n" +
		"--- Audit Complete ---\n"
	assert.Equal(t, want, out)
}

func TestExportTextOmitsEmptyDetail(t *testing.T) {
	out, err := ExportText([]finding.Finding{{
		Check:    "plays-inline",
		Label:    "Mobile Camera (playsInline)",
		Artifact: "index.tsx",
		Verdict:  finding.Pass,
	}})
	require.NoError(t, err)
	assert.Contains(t, out, "✅ Mobile Camera (playsInline): PASS\n")
	assert.NotContains(t, out, "PASS (")
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON(sampleFindings())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 3)

	assert.Equal(t, "port-exposure", decoded[0]["check"])
	assert.Equal(t, "Dockerfile", decoded[0]["artifact"])
	assert.Equal(t, "PASS", decoded[0]["verdict"])
	assert.Equal(t, "FAIL", decoded[1]["verdict"])
	assert.Equal(t, "WARN", decoded[2]["verdict"])
}

func TestExportJSONOmitsEmptyDetail(t *testing.T) {
	out, err := ExportJSON([]finding.Finding{{
		Check:    "plays-inline",
		Label:    "Mobile Camera (playsInline)",
		Artifact: "index.tsx",
		Verdict:  finding.Pass,
	}})
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	_, ok := decoded[0]["detail"]
	assert.False(t, ok)
}

func TestExportMarkdown(t *testing.T) {
	out, err := ExportMarkdown(sampleFindings())
	require.NoError(t, err)

	assert.Contains(t, out, "# Pre-Flight Audit Report\n")
	assert.Contains(t, out, "- **[PASS]** `Dockerfile`: Port Configuration (8080 exposed)\n")
	assert.Contains(t, out, "- **[FAIL]** `Dockerfile`: Container Security (Running as root)\n")
	assert.Contains(t, out, "- **[WARN]** `index.tsx`: Mobile Camera (playsInline) (iOS Safari might block video autostart)\n")
}

func TestExportMarkdownNoFindings(t *testing.T) {
	out, err := ExportMarkdown(nil)
	require.NoError(t, err)
	assert.Contains(t, out, "No checks were evaluated.")
}

func TestExportGitHubActionsLevels(t *testing.T) {
	out, err := ExportGitHubActions(sampleFindings())
	require.NoError(t, err)

	assert.Contains(t, out, "::notice file=Dockerfile::Port Configuration%3A PASS (8080 exposed)\n")
	assert.Contains(t, out, "::error file=Dockerfile::Container Security%3A FAIL (Running as root)\n")
	assert.Contains(t, out, "::warning file=index.tsx::Mobile Camera (playsInline)%3A WARNING (iOS Safari might block video autostart)\n")
}

func TestExportGitHubActionsEscaping(t *testing.T) {
	out, err := ExportGitHubActions([]finding.Finding{{
		Check:    "responsive-grid",
		Label:    "Mobile Responsiveness",
		Artifact: "index.tsx",
		Verdict:  finding.Fail,
		Detail:   "want repeat(auto-fill, 100%)",
	}})
	require.NoError(t, err)

	assert.Contains(t, out, "want repeat(auto-fill%2C 100%25)")
	assert.NotContains(t, out, "100%)")
}
