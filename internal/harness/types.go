package harness

// CaseResult is the observed outcome of one case.
type CaseResult struct {
	Query       string `json:"query"`
	Description string `json:"description,omitempty"`
	IDs         []int  `json:"ids,omitempty"`
	Error       string `json:"error,omitempty"`   // "parse" or "compile"
	Message     string `json:"message,omitempty"` // error text when Error is set
	Pass        bool   `json:"pass"`
}

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every case matched its expectation.
	Pass bool `json:"pass"`

	// Cases holds one entry per scenario case, in scenario order.
	Cases []CaseResult `json:"cases"`

	// Errors lists the expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a passing result with no cases.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Cases:  []CaseResult{},
		Errors: []string{},
	}
}

// AddError records a mismatch and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
