package types

// Outcome tells the client whether an operation took effect.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// RedirectBack asks the client to return to the page the request came from.
const RedirectBack = "back"

// Result is the envelope every mutating endpoint answers with.
type Result struct {
	Outcome        Outcome        `json:"outcome"`
	Message        string         `json:"message"`
	RedirectTarget string         `json:"redirect_target,omitempty"`
	Data           any            `json:"data,omitempty"`
	Details        map[string]any `json:"details,omitempty"`
}

func NewSuccessResult(message, redirectTarget string, data any) *Result {
	return &Result{
		Outcome:        OutcomeSuccess,
		Message:        message,
		RedirectTarget: redirectTarget,
		Data:           data,
	}
}

func NewFailureResult(message, redirectTarget string) *Result {
	return &Result{
		Outcome:        OutcomeFailure,
		Message:        message,
		RedirectTarget: redirectTarget,
	}
}

func (r *Result) IsSuccess() bool {
	return r.Outcome == OutcomeSuccess
}

// ResolveRedirectTarget replaces the back marker with the referring page when one is known.
func ResolveRedirectTarget(target, referer string) string {
	if target == "" {
		target = RedirectBack
	}
	if target == RedirectBack && referer != "" {
		return referer
	}
	return target
}
