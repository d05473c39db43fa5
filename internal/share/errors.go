package share

import (
	"errors"
	"fmt"
	"strings"
)

// Domain-specific errors for the share package.
var (
	ErrRelationMissing = errors.New("project relation property not found")
	ErrRelationType    = errors.New("project property is not a relation")
	ErrHeadingNotFound = errors.New("toggle heading not found")
	ErrUnknownCategory = errors.New("unknown category")
)

// ErrorKind classifies a share failure.
type ErrorKind string

const (
	KindAPI          ErrorKind = "api"
	KindStructure    ErrorKind = "structure"
	KindStatusUpdate ErrorKind = "status_update"
)

// Error is a share failure with enough context to be logged on its own.
type Error struct {
	Kind       ErrorKind
	Op         string
	DatabaseID string
	RecordID   string
	ProjectID  string
	Payload    string // upstream response body, if any
	Err        error
}

// NewError wraps err, picking up the upstream payload from any wrapped error exposing Payload().
func NewError(kind ErrorKind, op string, err error) *Error {
	e := &Error{Kind: kind, Op: op, Err: err}
	var p interface{ Payload() string }
	if errors.As(err, &p) {
		e.Payload = p.Payload()
	}
	return e
}

// WithDatabase sets the database id.
func (e *Error) WithDatabase(id string) *Error {
	e.DatabaseID = id
	return e
}

// WithRecord sets the record id.
func (e *Error) WithRecord(id string) *Error {
	e.RecordID = id
	return e
}

// WithProject sets the project id.
func (e *Error) WithProject(id string) *Error {
	e.ProjectID = id
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "kind=%s op=%s", e.Kind, e.Op)
	if e.DatabaseID != "" {
		fmt.Fprintf(&sb, " database=%s", e.DatabaseID)
	}
	if e.RecordID != "" {
		fmt.Fprintf(&sb, " record=%s", e.RecordID)
	}
	if e.ProjectID != "" {
		fmt.Fprintf(&sb, " project=%s", e.ProjectID)
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if e.Payload != "" {
		fmt.Fprintf(&sb, " payload=%s", e.Payload)
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}
