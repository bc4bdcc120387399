package schema

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/xeipuuv/gojsonschema"

	"github.com/putongyong/ocpp/errors"
	"github.com/putongyong/ocpp/message"
	"github.com/putongyong/ocpp/pkg/decimal"
)

// ValidatePayload validates an envelope's payload against the schema for its
// action and kind.
//
// Only Call and CallResult envelopes carry validatable payloads; anything
// else fails with errors.ErrNotValidatable, which marks caller misuse and is
// deliberately kept outside the taxonomy. An action with no schema in this
// protocol version fails with NotImplemented so the caller can answer with
// the correct wire error. Schema violations map onto the taxonomy by failure
// shape: forbidden extra properties are a FormatViolation, missing required
// properties a ProtocolError, violated type, length, pattern, range or enum
// constraints a TypeConstraintViolation, and everything else a
// PropertyConstraintViolation.
func (v *Validator) ValidatePayload(msg message.Message) error {
	var (
		action  string
		payload map[string]any
		schema  *Schema
		err     error
	)

	switch m := msg.(type) {
	case message.Call:
		action, payload = m.Action, m.Payload
		schema, err = v.SchemaForCall(action)
	case message.CallResult:
		action, payload = m.Action, m.Payload
		if action == "" {
			return fmt.Errorf("%w: CallResult carries no action; attach it from the matching Call",
				errors.ErrNotValidatable)
		}
		schema, err = v.SchemaForCallResult(action)
	default:
		return fmt.Errorf("%w: %T is not a Call or CallResult", errors.ErrNotValidatable, msg)
	}

	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.New(errors.NotImplemented,
				fmt.Sprintf("Action %q is not implemented in OCPP %s", action, v.version), nil)
		}
		// Unreadable or uncompilable schema file: a deployment defect for
		// the operator, not a protocol error for the peer.
		return err
	}

	if payload == nil {
		payload = map[string]any{}
	}

	// Re-encode numeric leaves so range and type checks compare against the
	// decimal value the peer intended, not a binary-float expansion.
	result, err := schema.Validate(decimal.Normalize(payload))
	if err != nil {
		return fmt.Errorf("schema: validate %s payload: %w", action, err)
	}
	if result.Valid() {
		return nil
	}

	v.logger.Debug("payload validation failed",
		"version", v.version.String(),
		"action", action,
		"violations", len(result.Errors()))
	return taxonomyError(result.Errors()[0])
}

// taxonomyError maps a schema violation onto the OCPP error taxonomy.
func taxonomyError(desc gojsonschema.ResultError) *errors.Error {
	var code errors.Code
	switch desc.Type() {
	case "additional_property_not_allowed":
		code = errors.FormatViolation
	case "required":
		code = errors.ProtocolError
	case "invalid_type",
		"string_gte", "string_lte",
		"pattern", "format", "multiple_of", "enum",
		"number_gte", "number_gt", "number_lte", "number_lt":
		code = errors.TypeConstraintViolation
	default:
		code = errors.PropertyConstraintViolation
	}
	return errors.New(code, desc.String(), nil)
}
