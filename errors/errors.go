package errors

import (
	"errors"
	"fmt"
	"reflect"
)

// Code identifies one of the call error codes defined by the OCPP
// specification.
type Code int

const (
	// NotImplemented signals the requested action is not known by the receiver.
	NotImplemented Code = iota
	// NotSupported signals the action is recognized but not supported.
	NotSupported
	// InternalError signals the receiver failed to process a valid action.
	InternalError
	// ProtocolError signals an incomplete payload for the action.
	ProtocolError
	// SecurityError signals a security issue prevented completing the action.
	SecurityError
	// FormatViolation signals a syntactically incorrect payload or frame.
	FormatViolation
	// PropertyConstraintViolation signals a field carrying an invalid value.
	PropertyConstraintViolation
	// OccurenceConstraintViolation signals a violated occurrence constraint.
	// The misspelling matches the wire string fixed by the OCPP specification.
	OccurenceConstraintViolation
	// TypeConstraintViolation signals a field violating data type constraints.
	TypeConstraintViolation
	// GenericError covers any error not covered by the other codes.
	GenericError
)

// Sentinel errors kept distinct from the taxonomy.
var (
	// ErrUnknownCode reports a wire error code outside the set defined by the
	// OCPP specification. It is never coerced into a known Code.
	ErrUnknownCode = errors.New("unknown call error code")

	// ErrNotValidatable reports that a value passed to the payload validator
	// is not a message the protocol defines validation for. It indicates
	// caller misuse, not a malformed wire message.
	ErrNotValidatable = errors.New("message cannot be validated")
)

// wireCodes maps each Code to its wire string. The mapping is total: every
// Code has exactly one wire string.
var wireCodes = map[Code]string{
	NotImplemented:               "NotImplemented",
	NotSupported:                 "NotSupported",
	InternalError:                "InternalError",
	ProtocolError:                "ProtocolError",
	SecurityError:                "SecurityError",
	FormatViolation:              "FormatViolation",
	PropertyConstraintViolation:  "PropertyConstraintViolation",
	OccurenceConstraintViolation: "OccurenceConstraintViolation",
	TypeConstraintViolation:      "TypeConstraintViolation",
	GenericError:                 "GenericError",
}

// defaultDescriptions carries the human description the OCPP specification
// attaches to each code, used when a CALLERROR arrives without one.
var defaultDescriptions = map[Code]string{
	NotImplemented:               "Request Action is not known by receiver",
	NotSupported:                 "Requested Action is recognized but not supported by the receiver",
	InternalError:                "An internal error occurred and the receiver was not able to process the requested Action successfully",
	ProtocolError:                "Payload for Action is incomplete",
	SecurityError:                "During the processing of Action a security issue occurred preventing receiver from completing the Action successfully",
	FormatViolation:              "Payload for Action is syntactically incorrect or not conform the PDU structure for Action",
	PropertyConstraintViolation:  "Payload is syntactically correct but at least one field contains an invalid value",
	OccurenceConstraintViolation: "Payload for Action is syntactically correct but at least one of the fields violates occurence constraints",
	TypeConstraintViolation:      "Payload for Action is syntactically correct but at least one of the fields violates data type constraints",
	GenericError:                 "Any other error not covered by the previous ones",
}

// codesByWire is the reverse of wireCodes. The reverse mapping is partial:
// strings outside it fail with ErrUnknownCode.
var codesByWire = func() map[string]Code {
	m := make(map[string]Code, len(wireCodes))
	for code, wire := range wireCodes {
		m[wire] = code
	}
	return m
}()

// String returns the wire error code string for c.
func (c Code) String() string {
	if wire, ok := wireCodes[c]; ok {
		return wire
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// DefaultDescription returns the human description OCPP attaches to c.
func (c Code) DefaultDescription() string {
	return defaultDescriptions[c]
}

// CodeFromString resolves a wire error code string to its Code. Wire codes
// are case-sensitive; the second return value reports whether the string is
// one of the codes OCPP defines.
func CodeFromString(wire string) (Code, bool) {
	code, ok := codesByWire[wire]
	return code, ok
}

// Error is a typed OCPP call error: one taxonomy code plus the description
// and structured details that travel with it on the wire. Two errors of the
// same Code are equal when description and details match.
type Error struct {
	Code        Code
	Description string
	Details     map[string]any
}

// New creates a typed error. An empty description is filled with the code's
// default description.
func New(code Code, description string, details map[string]any) *Error {
	if description == "" {
		description = code.DefaultDescription()
	}
	return &Error{Code: code, Description: description, Details: details}
}

// FromCode creates a typed error from a wire error code string. Unknown
// codes fail with ErrUnknownCode.
func FromCode(wire, description string, details map[string]any) (*Error, error) {
	code, ok := CodeFromString(wire)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, wire)
	}
	return New(code, description, details), nil
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is reports whether target matches e. A *Error target matches on Code; when
// the target also carries a description or details, those must match too.
// This lets errors.Is classify by kind with a bare New(code, "", nil) target
// while still supporting full-fidelity comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != e.Code {
		return false
	}
	if t.Description != "" && t.Description != e.Description {
		return false
	}
	if t.Details != nil && !reflect.DeepEqual(t.Details, e.Details) {
		return false
	}
	return true
}

// IsCode reports whether err is (or wraps) a taxonomy error with the given
// code.
func IsCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
