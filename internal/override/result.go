package override

import "fmt"

// Outcome classifies a single override attempt.
type Outcome int

const (
	// Applied means the extension accepted the version.
	Applied Outcome = iota
	// Skipped means the subproject has no extension with the target name.
	Skipped
	// Unsupported means the extension exists but cannot be versioned.
	Unsupported
	// Failed means the extension rejected the version.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case Skipped:
		return "skipped"
	case Unsupported:
		return "unsupported"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, candidate := range []Outcome{Applied, Skipped, Unsupported, Failed} {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown override outcome %q", text)
}

// Result records what the override pass did to one subproject.
type Result struct {
	Project   string
	OutputDir string
	Extension string
	Outcome   Outcome
	Reason    error // set for Unsupported and Failed
}

// Summary counts results per outcome.
type Summary map[Outcome]int

// Summarize counts results per outcome.
func Summarize(results []Result) Summary {
	s := make(Summary, 4)
	for _, r := range results {
		s[r.Outcome]++
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d applied, %d skipped, %d unsupported, %d failed",
		s[Applied], s[Skipped], s[Unsupported], s[Failed])
}
