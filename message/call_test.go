package message

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/putongyong/ocpp/errors"
)

func TestNewCall(t *testing.T) {
	call := NewCall("Heartbeat", nil)
	assert.NotEmpty(t, call.UniqueID)
	assert.Equal(t, "Heartbeat", call.Action)
	assert.Equal(t, map[string]any{}, call.Payload)

	other := NewCall("Heartbeat", nil)
	assert.NotEqual(t, call.UniqueID, other.UniqueID, "unique ids must be unique")
}

func TestCallMarshalJSON(t *testing.T) {
	call := Call{
		UniqueID: "1234",
		Action:   "SetChargingProfile",
		Payload:  map[string]any{"limit": 21.4},
	}

	data, err := call.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[2, "1234", "SetChargingProfile", {"limit": 21.4}]`, string(data))
	assert.Contains(t, string(data), "21.4", "floats must not expand to binary artifacts")
}

func TestCallResultMarshalJSON(t *testing.T) {
	result := CallResult{
		UniqueID: "1234",
		Action:   "GetCompositeSchedule",
		Payload:  map[string]any{"status": "Accepted"},
	}

	data, err := result.MarshalJSON()
	require.NoError(t, err)
	// The action is carried out-of-band and never serialized.
	assert.JSONEq(t, `[3, "1234", {"status": "Accepted"}]`, string(data))
}

func TestCallErrorMarshalJSON(t *testing.T) {
	callError := CallError{
		UniqueID:         "1234",
		ErrorCode:        "ProtocolError",
		ErrorDescription: "Payload for Action is incomplete",
	}

	data, err := callError.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `[4, "1234", "ProtocolError", "Payload for Action is incomplete", {}]`, string(data))
}

func TestMarshalUnpackRoundTrip(t *testing.T) {
	call := Call{UniqueID: "77", Action: "Heartbeat", Payload: map[string]any{}}

	data, err := call.MarshalJSON()
	require.NoError(t, err)

	msg, err := Unpack(data)
	require.NoError(t, err)
	assert.Equal(t, call, msg)
}

func TestCallErrorToError(t *testing.T) {
	callError := CallError{
		UniqueID:         "1337",
		ErrorCode:        "ProtocolError",
		ErrorDescription: "Something went wrong",
		ErrorDetails:     map[string]any{"cause": "arity"},
	}

	typed, err := callError.ToError()
	require.NoError(t, err)
	assert.Equal(t, errors.New(errors.ProtocolError, "Something went wrong",
		map[string]any{"cause": "arity"}), typed)
}

func TestCallErrorToErrorUnknownCode(t *testing.T) {
	callError := CallError{
		UniqueID:         "1337",
		ErrorCode:        "418",
		ErrorDescription: "I'm a teapot",
	}

	_, err := callError.ToError()
	assert.True(t, stderrors.Is(err, errors.ErrUnknownCode), "got %v", err)
}

func TestCallErrorRoundTrip(t *testing.T) {
	original := CallError{
		UniqueID:         "1337",
		ErrorCode:        "TypeConstraintViolation",
		ErrorDescription: "idTag too long",
		ErrorDetails:     map[string]any{"field": "idTag"},
	}

	typed, err := original.ToError()
	require.NoError(t, err)

	rebuilt := NewCallError("1337", typed)
	assert.Equal(t, original, rebuilt, "code, description and details survive the round trip")
}

func TestNewCallErrorFromPlainError(t *testing.T) {
	callError := NewCallError("42", fmt.Errorf("database on fire"))
	assert.Equal(t, "GenericError", callError.ErrorCode)
	assert.Equal(t, "database on fire", callError.ErrorDescription)
	assert.Equal(t, map[string]any{}, callError.ErrorDetails)
}

func TestNewCallErrorFromWrappedTaxonomyError(t *testing.T) {
	wrapped := fmt.Errorf("validate: %w", errors.New(errors.NotImplemented, "", nil))
	callError := NewCallError("42", wrapped)
	assert.Equal(t, "NotImplemented", callError.ErrorCode)
	assert.Equal(t, "Request Action is not known by receiver", callError.ErrorDescription)
}

func TestEnvelopeStrings(t *testing.T) {
	call := Call{UniqueID: "1", Action: "Heartbeat", Payload: map[string]any{}}
	assert.Equal(t, "Call[unique_id=1, action=Heartbeat, payload=map[]]", call.String())

	result := CallResult{UniqueID: "1", Action: "Authorize", Payload: map[string]any{"status": "Accepted"}}
	assert.Contains(t, result.String(), "unique_id=1")
	assert.Contains(t, result.String(), "action=Authorize")

	callError := CallError{UniqueID: "1", ErrorCode: "GenericError", ErrorDescription: "Some message", ErrorDetails: map[string]any{}}
	assert.Equal(t,
		"CallError[unique_id=1, error_code=GenericError, error_description=Some message, error_details=map[]]",
		callError.String())
}

func TestMessageTypeValid(t *testing.T) {
	assert.True(t, MessageTypeCall.Valid())
	assert.True(t, MessageTypeCallResult.Valid())
	assert.True(t, MessageTypeCallError.Valid())
	assert.False(t, MessageType(5).Valid())
	assert.False(t, MessageType(0).Valid())
}
