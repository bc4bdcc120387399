// Package schema resolves and validates OCPP payloads against the JSON
// schema documents the protocol defines per version, message kind and action.
//
// # Overview
//
// A Validator is constructed for one protocol version and resolves schema
// documents deterministically: the request schema for an action lives in
// "<Action>.json", the response schema in "<Action>Response.json", inside a
// per-version directory. The built-in schema sets are embedded in the binary;
// WithSchemaRoot points the validator at an on-disk tree (custom or vendor
// schema sets) that takes priority over the built-in set.
//
// Compiled schemas are cached per (version, kind, action) key for the
// lifetime of the validator: the first resolution reads and compiles the
// document, every later resolution is a cache hit. Racing resolutions of the
// same key may each compile independently; the cache converges on a single
// entry, so duplicate compiles are wasted work, not a correctness hazard.
// ClearCache exists for test isolation.
//
// # Error classes
//
// ValidatePayload keeps three failure classes apart:
//
//   - errors.ErrNotValidatable: the caller passed something that is not a
//     Call or CallResult. Caller misuse, not a wire problem.
//   - A taxonomy error (errors.Error): the payload is malformed per the
//     schema, or the action does not exist in this protocol version
//     (NotImplemented). Ready to encode into an outbound CALLERROR.
//   - A plain error wrapping fs.ErrNotExist or a compile failure from
//     SchemaForCall/SchemaForCallResult: a missing or unreadable schema file
//     is a deployment defect surfaced to the operator, never a protocol
//     error.
//
// Schema content is the sole source of truth for allowed values. Version
// specific vocabulary, such as the "Hertz" unit the OCPP 1.6 errata added
// for the Frequency measurand, lives in the schema documents, not in code.
package schema
