package message

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/putongyong/ocpp/errors"
)

// Unpack parses a raw OCPP-J frame into its envelope variant.
//
// The framing invariants map to the taxonomy as follows: input that is not
// valid JSON fails with FormatViolation; a JSON value that is not an array,
// an empty array, or a wrong element count for the variant fails with
// ProtocolError; a first element outside {2, 3, 4} fails with
// PropertyConstraintViolation, since OCPP-J defines exactly three legal
// discriminants. Framing violations are peer bugs, not transient
// conditions, and are never retried here.
func Unpack(raw []byte) (Message, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, errors.New(errors.FormatViolation, "Message is not valid JSON", nil)
	}
	// A frame is exactly one JSON value; trailing content is not valid JSON.
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.FormatViolation, "Message is not valid JSON", nil)
	}

	frame, ok := value.([]any)
	if !ok {
		return nil, errors.New(errors.ProtocolError, "OCPP message must be a JSON array", nil)
	}
	if len(frame) == 0 {
		return nil, errors.New(errors.ProtocolError, "Message does not contain MessageTypeId", nil)
	}

	typeID, ok := messageTypeOf(frame[0])
	if !ok {
		return nil, errors.New(errors.PropertyConstraintViolation,
			fmt.Sprintf("%v is not a valid MessageTypeId", frame[0]), nil)
	}

	switch typeID {
	case MessageTypeCall:
		return unpackCall(frame[1:])
	case MessageTypeCallResult:
		return unpackCallResult(frame[1:])
	default:
		return unpackCallError(frame[1:])
	}
}

// messageTypeOf extracts a valid discriminant from the first frame element.
// Non-numeric values and numbers outside {2, 3, 4} are both invalid.
func messageTypeOf(v any) (MessageType, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	id, err := num.Int64()
	if err != nil {
		return 0, false
	}
	t := MessageType(id)
	return t, t.Valid()
}

func unpackCall(rest []any) (Message, error) {
	if len(rest) != 3 {
		return nil, errors.New(errors.ProtocolError,
			"CALL must contain unique id, action and payload", nil)
	}
	action, ok := rest[1].(string)
	if !ok {
		return nil, errors.New(errors.ProtocolError, "CALL action must be a string", nil)
	}
	payload, err := payloadObject(rest[2])
	if err != nil {
		return nil, err
	}
	return Call{
		UniqueID: uniqueIDString(rest[0]),
		Action:   action,
		Payload:  payload,
	}, nil
}

func unpackCallResult(rest []any) (Message, error) {
	if len(rest) != 2 {
		return nil, errors.New(errors.ProtocolError,
			"CALLRESULT must contain unique id and payload", nil)
	}
	payload, err := payloadObject(rest[1])
	if err != nil {
		return nil, err
	}
	return CallResult{
		UniqueID: uniqueIDString(rest[0]),
		Payload:  payload,
	}, nil
}

func unpackCallError(rest []any) (Message, error) {
	if len(rest) != 3 && len(rest) != 4 {
		return nil, errors.New(errors.ProtocolError,
			"CALLERROR must contain unique id, error code, error description and optional error details", nil)
	}
	code, ok := rest[1].(string)
	if !ok {
		return nil, errors.New(errors.ProtocolError, "CALLERROR error code must be a string", nil)
	}
	description, ok := rest[2].(string)
	if !ok {
		return nil, errors.New(errors.ProtocolError, "CALLERROR error description must be a string", nil)
	}
	details := map[string]any{}
	if len(rest) == 4 {
		var err error
		details, err = payloadObject(rest[3])
		if err != nil {
			return nil, err
		}
	}
	return CallError{
		UniqueID:         uniqueIDString(rest[0]),
		ErrorCode:        code,
		ErrorDescription: description,
		ErrorDetails:     details,
	}, nil
}

// uniqueIDString coerces the wire unique id to a string. Some charge points
// send numeric ids; the envelope always carries a string.
func uniqueIDString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case json.Number:
		return id.String()
	default:
		return fmt.Sprintf("%v", id)
	}
}

func payloadObject(v any) (map[string]any, error) {
	payload, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ProtocolError, "payload must be a JSON object", nil)
	}
	return payload, nil
}
