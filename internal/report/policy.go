package report

import "fmt"

// Policy decides what a dangling reference does to the run.
type Policy string

const (
	// PolicySkip drops the reference and records it in Report.Unresolved.
	PolicySkip Policy = "skip"
	// PolicyFail aborts the join with a *ReferenceError.
	PolicyFail Policy = "fail"
)

// ParsePolicy accepts "skip" or "fail".
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicySkip, PolicyFail:
		return p, nil
	default:
		return "", fmt.Errorf("unknown missing reference policy %q", s)
	}
}
