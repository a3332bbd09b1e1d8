package finding

// Verdict is the outcome of a single checklist evaluation.
type Verdict string

const (
	Pass Verdict = "PASS"
	Warn Verdict = "WARN"
	Fail Verdict = "FAIL"
)

// Finding records the verdict of one check against one artifact. Every check
// produces exactly one Finding per run.
type Finding struct {
	Check    string  `json:"check"`
	Label    string  `json:"label"`
	Artifact string  `json:"artifact"`
	Verdict  Verdict `json:"verdict"`
	Detail   string  `json:"detail,omitempty"`
}

// Message renders the human-readable body of a finding: the check label, the
// verdict word, and the optional parenthetical detail. WARN findings spell
// out "WARNING" to match the report wording.
func (f Finding) Message() string {
	word := string(f.Verdict)
	if f.Verdict == Warn {
		word = "WARNING"
	}
	if f.Detail == "" {
		return f.Label + ": " + word
	}
	return f.Label + ": " + word + " (" + f.Detail + ")"
}
