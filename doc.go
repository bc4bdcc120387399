// Package ocpp implements the JSON message layer of the Open Charge
// Point Protocol (OCPP-J): framing, unpacking and schema validation of
// the CALL, CALLRESULT and CALLERROR messages exchanged between charge
// points and central systems.
//
// # Architecture
//
// The module is a library with no transport of its own. It is split
// into small packages that each own one concern:
//
//   - message: the three wire envelopes, Unpack for inbound frames and
//     MarshalJSON for outbound ones
//   - schema: per-version JSON schema repositories and payload
//     validation against them
//   - errors: the closed OCPP error code taxonomy that validation and
//     unpacking failures are expressed in
//   - v16: typed constants for the OCPP 1.6 actions and enumerated
//     field values
//   - pkg/cache: the generic in-memory cache backing compiled schema
//     reuse
//   - pkg/decimal: float encoding that keeps numeric payload fields at
//     the precision the sender wrote
//
// # Usage
//
// Inbound, a raw websocket frame becomes a typed message and is checked
// against the schema for its action:
//
//	msg, err := message.Unpack(frame)
//	if err != nil {
//		// err carries an OCPP error code, ready for a CALLERROR reply
//	}
//	v, _ := schema.NewValidator(schema.V16)
//	if err := v.ValidatePayload(msg); err != nil {
//		reply := message.NewCallError(msg.GetUniqueID(), err)
//		// send json.Marshal(reply) back to the peer
//	}
//
// Outbound, payloads are built as plain maps and framed by the message
// types:
//
//	call := message.NewCall("BootNotification", map[string]any{
//		"chargePointModel":  "SingleSocketCharger",
//		"chargePointVendor": "VendorX",
//	})
//	frame, err := json.Marshal(call)
//
// Validation errors, framing errors and error frames received from the
// peer all share the errors package taxonomy, so a single errors.As
// check classifies any failure in the pipeline.
package ocpp
