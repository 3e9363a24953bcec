package probe

// RejectReason classifies why a candidate URL was not confirmed. Rejections
// are never surfaced to users, but keeping the reason makes the validator's
// decisions inspectable in tests.
type RejectReason int

const (
	// RejectNone means the candidate was confirmed.
	RejectNone RejectReason = iota
	// RejectRequestFailed covers DNS, connect, TLS, timeout and read errors.
	RejectRequestFailed
	// RejectBadStatus means the response status was not 200.
	RejectBadStatus
	// RejectNotJSON means the content-type did not mention JSON.
	RejectNotJSON
	// RejectParseFailed means the body was not valid JSON.
	RejectParseFailed
	// RejectNoSpecKeys means the JSON had none of the Swagger/OpenAPI marker keys.
	RejectNoSpecKeys
)

// String returns a short label for the reason, used in logs and metrics.
func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "confirmed"
	case RejectRequestFailed:
		return "request_failed"
	case RejectBadStatus:
		return "bad_status"
	case RejectNotJSON:
		return "not_json"
	case RejectParseFailed:
		return "parse_failed"
	case RejectNoSpecKeys:
		return "no_spec_keys"
	default:
		return "unknown"
	}
}

// Outcome is the classification of a single candidate URL.
type Outcome struct {
	// URL is the probed candidate.
	URL string
	// Reason is RejectNone for confirmed endpoints, otherwise why it was rejected.
	Reason RejectReason
}

// Confirmed reports whether the candidate passed all validation checks.
func (o Outcome) Confirmed() bool { return o.Reason == RejectNone }
