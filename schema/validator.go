package schema

import (
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/putongyong/ocpp/pkg/cache"
)

//go:embed schemas
var builtinSchemas embed.FS

// Validator resolves and validates payloads against the JSON schema set of
// one OCPP version. It is safe for concurrent use: the compiled-schema cache
// is the only shared mutable state and tolerates concurrent read and
// populate access.
type Validator struct {
	version Version
	root    string
	cache   cache.Cache[*Schema]
	logger  *slog.Logger
}

// Option configures a Validator using the functional options pattern.
type Option func(*Validator)

// WithSchemaRoot points the validator at an on-disk directory of schema
// documents. Files found there take priority over the built-in schema set
// for the version; files missing there fall back to the built-in set.
func WithSchemaRoot(root string) Option {
	return func(v *Validator) { v.root = root }
}

// WithLogger sets the logger used for schema load and cache events.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithCache replaces the default compiled-schema cache, for example to
// share one cache across validators or to attach Prometheus metrics via
// cache.WithMetrics.
func WithCache(c cache.Cache[*Schema]) Option {
	return func(v *Validator) {
		if c != nil {
			v.cache = c
		}
	}
}

// NewValidator creates a validator for the given protocol version.
func NewValidator(version Version, opts ...Option) (*Validator, error) {
	if !version.Valid() {
		return nil, fmt.Errorf("schema: unsupported OCPP version %q", version)
	}

	v := &Validator{
		version: version,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}

	if v.cache == nil {
		c, err := cache.NewSimple[*Schema]()
		if err != nil {
			return nil, fmt.Errorf("schema: create cache: %w", err)
		}
		v.cache = c
	}
	return v, nil
}

// Version returns the protocol version this validator was built for.
func (v *Validator) Version() Version { return v.version }

// SchemaForCall resolves the request schema for an action. A missing schema
// file surfaces as an error wrapping fs.ErrNotExist: the action is unknown
// to this protocol version, or the deployment is missing a document.
func (v *Validator) SchemaForCall(action string) (*Schema, error) {
	return v.resolve(action, "")
}

// SchemaForCallResult resolves the response schema for an action.
func (v *Validator) SchemaForCallResult(action string) (*Schema, error) {
	return v.resolve(action, "Response")
}

// CacheStats exposes the compiled-schema cache counters. The second
// resolution of a key must be a cache hit; tests assert that here.
func (v *Validator) CacheStats() *cache.Statistics {
	return v.cache.Stats()
}

// ClearCache drops all cached schemas. Intended for test isolation; the
// schema sets themselves are static for the process lifetime.
func (v *Validator) ClearCache() {
	v.cache.Clear()
}

// resolve loads, compiles and caches the schema for (version, kind, action).
// The kind is encoded as the file name suffix: "" for requests, "Response"
// for responses.
func (v *Validator) resolve(action, suffix string) (*Schema, error) {
	key := v.version.dir() + "/" + action + suffix
	if s, ok := v.cache.Get(key); ok {
		return s, nil
	}

	name := action + suffix + ".json"
	data, err := v.readSchema(name)
	if err != nil {
		return nil, err
	}

	s, err := compileSchema(data)
	if err != nil {
		return nil, fmt.Errorf("schema: %s: %w", key, err)
	}

	// A racing resolution of the same key may have stored its own compile
	// of the same document; last write wins and both are equivalent.
	if _, err := v.cache.Set(key, s); err != nil {
		return nil, fmt.Errorf("schema: cache %s: %w", key, err)
	}
	v.logger.Debug("schema compiled",
		"version", v.version.String(),
		"schema", action+suffix,
		"cached", v.cache.Size())
	return s, nil
}

// readSchema reads a schema document by file name, preferring the override
// root when configured.
func (v *Validator) readSchema(name string) ([]byte, error) {
	if v.root != "" {
		data, err := os.ReadFile(filepath.Join(v.root, name))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("schema: read override %s: %w", name, err)
		}
	}

	data, err := builtinSchemas.ReadFile(path.Join("schemas", v.version.dir(), name))
	if err != nil {
		return nil, fmt.Errorf("schema: read %s for OCPP %s: %w", name, v.version, err)
	}
	return data, nil
}
