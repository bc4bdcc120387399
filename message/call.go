package message

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/putongyong/ocpp/errors"
	"github.com/putongyong/ocpp/pkg/decimal"
)

// Call is a CALL envelope: a request for a single action.
type Call struct {
	UniqueID string
	Action   string
	Payload  map[string]any
}

// NewCall creates a Call with a generated UUID unique id. A nil payload
// becomes an empty object.
func NewCall(action string, payload map[string]any) Call {
	if payload == nil {
		payload = map[string]any{}
	}
	return Call{UniqueID: uuid.NewString(), Action: action, Payload: payload}
}

// MessageTypeID returns MessageTypeCall.
func (c Call) MessageTypeID() MessageType { return MessageTypeCall }

// GetUniqueID returns the correlation id.
func (c Call) GetUniqueID() string { return c.UniqueID }

// MarshalJSON emits the [2, uniqueId, action, payload] wire frame. Numeric
// payload leaves are normalized to their shortest round-trip literals first.
func (c Call) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		int(MessageTypeCall),
		c.UniqueID,
		c.Action,
		decimal.Normalize(emptyIfNil(c.Payload)),
	})
}

func (c Call) String() string {
	return fmt.Sprintf("Call[unique_id=%s, action=%s, payload=%v]", c.UniqueID, c.Action, c.Payload)
}

// CallResult is a CALLRESULT envelope: the response to a Call.
//
// The wire frame does not carry the action name. Validation is
// action-specific, so Action must be supplied out-of-band by the caller
// from the matching Call before the result can be validated.
type CallResult struct {
	UniqueID string
	Action   string // not on the wire; attached from the matching Call
	Payload  map[string]any
}

// MessageTypeID returns MessageTypeCallResult.
func (r CallResult) MessageTypeID() MessageType { return MessageTypeCallResult }

// GetUniqueID returns the correlation id.
func (r CallResult) GetUniqueID() string { return r.UniqueID }

// MarshalJSON emits the [3, uniqueId, payload] wire frame. The action never
// appears on the wire.
func (r CallResult) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		int(MessageTypeCallResult),
		r.UniqueID,
		decimal.Normalize(emptyIfNil(r.Payload)),
	})
}

func (r CallResult) String() string {
	return fmt.Sprintf("CallResult[unique_id=%s, action=%s, payload=%v]", r.UniqueID, r.Action, r.Payload)
}

// CallError is a CALLERROR envelope: a protocol-level fault in reply to a
// Call.
type CallError struct {
	UniqueID         string
	ErrorCode        string
	ErrorDescription string
	ErrorDetails     map[string]any
}

// MessageTypeID returns MessageTypeCallError.
func (e CallError) MessageTypeID() MessageType { return MessageTypeCallError }

// GetUniqueID returns the correlation id.
func (e CallError) GetUniqueID() string { return e.UniqueID }

// MarshalJSON emits the [4, uniqueId, errorCode, errorDescription,
// errorDetails] wire frame. Nil details serialize as an empty object.
func (e CallError) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		int(MessageTypeCallError),
		e.UniqueID,
		e.ErrorCode,
		e.ErrorDescription,
		decimal.Normalize(emptyIfNil(e.ErrorDetails)),
	})
}

func (e CallError) String() string {
	return fmt.Sprintf("CallError[unique_id=%s, error_code=%s, error_description=%s, error_details=%v]",
		e.UniqueID, e.ErrorCode, e.ErrorDescription, e.ErrorDetails)
}

// ToError converts the envelope into its typed taxonomy error. An error code
// outside the set OCPP defines fails with
// errors.ErrUnknownCode; it is never coerced into a known code.
func (e CallError) ToError() (*errors.Error, error) {
	return errors.FromCode(e.ErrorCode, e.ErrorDescription, e.ErrorDetails)
}

// NewCallError builds the CALLERROR envelope answering the Call with the
// given unique id. Taxonomy errors keep their code, description and details;
// any other error maps to GenericError with its message as description.
func NewCallError(uniqueID string, err error) CallError {
	var e *errors.Error
	if stderrors.As(err, &e) {
		return CallError{
			UniqueID:         uniqueID,
			ErrorCode:        e.Code.String(),
			ErrorDescription: e.Description,
			ErrorDetails:     e.Details,
		}
	}
	return CallError{
		UniqueID:         uniqueID,
		ErrorCode:        errors.GenericError.String(),
		ErrorDescription: err.Error(),
		ErrorDetails:     map[string]any{},
	}
}

func emptyIfNil(payload map[string]any) map[string]any {
	if payload == nil {
		return map[string]any{}
	}
	return payload
}
