package scoring

import "fmt"

// FindingSeverity categorizes how serious a finding is.
type FindingSeverity string

const (
	Positive FindingSeverity = "positive"
	Info     FindingSeverity = "info"
	Caution  FindingSeverity = "caution"
)

// Finding is a structured key finding shown alongside a score.
type Finding struct {
	Code     string          `json:"code"`
	Severity FindingSeverity `json:"severity"`
	Message  string          `json:"message"`
}

// Score bands shared by all components.
const (
	bandExcellent = 85
	bandGood      = 70
	bandFair      = 55
)

func bandLabel(score int) string {
	switch {
	case score >= bandExcellent:
		return "excellent"
	case score >= bandGood:
		return "good"
	case score >= bandFair:
		return "fair"
	default:
		return "poor"
	}
}

func bandSeverity(score int) FindingSeverity {
	switch {
	case score >= bandExcellent:
		return Positive
	case score >= bandFair:
		return Info
	default:
		return Caution
	}
}

// componentFinding turns one component score into a banded finding.
// `what` reads like "Restorative quality", `hint` is the caution-band advice.
func componentFinding(code, what, hint string, score int) Finding {
	f := Finding{
		Code:     code,
		Severity: bandSeverity(score),
		Message:  fmt.Sprintf("%s was %s (%d/100).", what, bandLabel(score), score),
	}
	if f.Severity == Caution && hint != "" {
		f.Message += " " + hint
	}
	return f
}

// Messages flattens findings for callers that only want the text.
func Messages(fs []Finding) []string {
	out := make([]string, 0, len(fs))
	for _, f := range fs {
		out = append(out, f.Message)
	}
	return out
}
