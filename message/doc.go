// Package message models the OCPP-J wire message envelopes.
//
// # Overview
//
// Every OCPP-J message is a JSON array whose first element is the message
// type discriminant:
//
//	[2, "<unique id>", "<action>", {payload}]                      CALL
//	[3, "<unique id>", {payload}]                                  CALLRESULT
//	[4, "<unique id>", "<code>", "<description>", {details}]       CALLERROR
//
// The package provides one envelope type per discriminant (Call, CallResult,
// CallError), all satisfying the Message interface, plus Unpack, which parses
// raw frames and enforces the framing invariants: valid JSON, array shape,
// a known discriminant, and the exact arity of each variant. Framing
// violations surface as typed errors from the errors package so a transport
// can encode them straight into an outbound CALLERROR.
//
// CALLRESULT frames do not carry the action name; validation is
// action-specific, so the routing layer attaches the action of the matching
// Call before handing the result to the schema validator.
//
// Payloads are decoded with json.Decoder.UseNumber, keeping every numeric
// leaf as the exact decimal literal the peer sent. Marshaling normalizes
// numeric leaves through pkg/decimal, so a value read as 21.4 is re-emitted
// as 21.4 rather than its binary floating-point expansion.
package message
