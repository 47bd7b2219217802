package domain

import "fmt"

// Kind classifies an Error by the way callers must handle it. Every
// failure surfaced by the plan pipeline carries exactly one Kind; the
// HTTP layer maps kinds onto status codes.
type Kind int

const (
	// KindBadSyntax means the submitted YAML could not be parsed at all.
	KindBadSyntax Kind = iota + 1
	// KindInputShape means the client brief violated its schema.
	KindInputShape
	// KindOutputShape means the generated plan violated its schema.
	KindOutputShape
	// KindBusinessRule means a cross-field invariant of the plan failed.
	KindBusinessRule
	// KindExtraction means no usable JSON/Markdown pair could be pulled
	// out of the model response.
	KindExtraction
	// KindNotFound means the requested plan or artifact does not exist.
	KindNotFound
	// KindStorage means persisting or reading plan artifacts failed.
	KindStorage
	// KindRateLimited means the caller exhausted its request window.
	KindRateLimited
)

// String returns a short stable label for the kind, used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadSyntax:
		return "bad_syntax"
	case KindInputShape:
		return "input_shape"
	case KindOutputShape:
		return "output_shape"
	case KindBusinessRule:
		return "business_rule"
	case KindExtraction:
		return "extraction"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "unknown"
	}
}

// FieldError names one violated constraint at a field path, e.g.
// {Field: "client.goal", Constraint: "oneof"}.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// Error is the tagged failure type of the plan pipeline. Fields is only
// populated for the two shape kinds; Err optionally wraps the cause.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds an Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError builds an Error of the given kind around a cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
