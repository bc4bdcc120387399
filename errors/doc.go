// Package errors implements the OCPP call error taxonomy.
//
// # Overview
//
// The OCPP specification defines a closed set of error codes that a peer may
// place in a CALLERROR frame. This package models that set as a single typed
// error value (Error) carrying a Code, a human description, and arbitrary
// structured details, replacing the exception hierarchy some OCPP stacks use
// with exhaustive matching on a closed enumeration.
//
// The mapping between codes and wire strings is total in one direction (every
// Code has exactly one wire string) and partial in the other: decoding an
// unknown wire string fails with ErrUnknownCode rather than degrading to
// GenericError, because silently downgrading would hide spec violations from
// the peer implementation.
//
// # Quick Start
//
// Build a typed error for an outbound CALLERROR:
//
//	err := errors.New(errors.NotImplemented, "", nil)
//
// Classify an error by kind:
//
//	if errors.IsCode(err, errors.TypeConstraintViolation) {
//	    // reject the payload
//	}
//
// Decode a wire error code:
//
//	e, err := errors.FromCode("ProtocolError", "Something went wrong", nil)
//
// The package integrates with the standard library: Error implements error,
// supports errors.Is/errors.As, and the sentinels ErrUnknownCode and
// ErrNotValidatable are plain errors outside the taxonomy.
package errors
