// Package cache provides a generic, thread-safe cache used for compiled
// schema documents.
//
// The cache has no eviction policy: OCPP schema sets are static for the
// lifetime of the process, so entries live until Clear is called (test
// isolation) or the process exits. Statistics are always collected, which is
// how callers observe the single-parse-per-key guarantee; Prometheus metrics
// export is optional via functional options.
//
// Concurrent read and populate access is safe. A race to populate the same key
// is harmless: both writers store semantically identical values and the cache
// converges on the last one.
package cache
