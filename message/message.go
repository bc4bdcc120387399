package message

import "encoding/json"

// MessageType is the message type discriminant carried as the first element
// of every OCPP-J frame. The protocol defines exactly three values; no
// fourth variant exists.
type MessageType int

const (
	// MessageTypeCall identifies a CALL frame (request).
	MessageTypeCall MessageType = 2
	// MessageTypeCallResult identifies a CALLRESULT frame (response).
	MessageTypeCallResult MessageType = 3
	// MessageTypeCallError identifies a CALLERROR frame (protocol fault).
	MessageTypeCallError MessageType = 4
)

// Valid reports whether t is one of the three discriminants the protocol
// defines.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeCall, MessageTypeCallResult, MessageTypeCallError:
		return true
	}
	return false
}

// String returns the frame name the OCPP specification uses for t.
func (t MessageType) String() string {
	switch t {
	case MessageTypeCall:
		return "CALL"
	case MessageTypeCallResult:
		return "CALLRESULT"
	case MessageTypeCallError:
		return "CALLERROR"
	default:
		return "UNKNOWN"
	}
}

// Message is the common interface of the three OCPP-J envelope variants.
// Envelopes are immutable after construction and serialize to their array
// wire form via json.Marshaler.
type Message interface {
	// MessageTypeID returns the frame discriminant.
	MessageTypeID() MessageType

	// GetUniqueID returns the message correlation id. It is always a
	// string, coerced from numeric wire values during unpacking.
	GetUniqueID() string

	json.Marshaler
}
