// Package v16 defines the OCPP 1.6 action names and enumerated field
// values as typed string constants.
//
// # Overview
//
// OCPP 1.6 payloads carry many string fields that are restricted to a
// closed set of values: the action of a CALL, the type of a Reset
// request, the status of a BootNotification response, and so on. The
// JSON schemas in the schema package enforce those sets on the wire;
// this package gives callers the same sets as Go constants so that
// payloads can be built without spelling the strings by hand.
//
// All types are plain strings, so they drop directly into the
// map[string]any payloads consumed by message.NewCall:
//
//	call := message.NewCall(string(v16.ActionReset), map[string]any{
//		"type": string(v16.ResetTypeSoft),
//	})
//
// The constants cover the 1.6 specification including the additions
// from the security whitepaper (certificate handling, signed firmware
// updates and log upload).
package v16
