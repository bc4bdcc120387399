package schema

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/putongyong/ocpp/pkg/cache"
)

func TestNewValidatorRejectsUnknownVersion(t *testing.T) {
	_, err := NewValidator(Version("0.7"))
	assert.Error(t, err)
}

func TestVersionValid(t *testing.T) {
	assert.True(t, V16.Valid())
	assert.True(t, V20.Valid())
	assert.True(t, V201.Valid())
	assert.False(t, Version("3.0").Valid())
}

func TestSchemaForCallParsesDocument(t *testing.T) {
	v, err := NewValidator(V16)
	require.NoError(t, err)

	schema, err := v.SchemaForCall("Reset")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"title":   "ResetRequest",
		"type":    "object",
		"properties": map[string]any{
			"type": map[string]any{
				"additionalProperties": false,
				"type":                 "string",
				"enum":                 []any{"Hard", "Soft"},
			},
		},
		"additionalProperties": false,
		"required":             []any{"type"},
	}, schema.Document())
}

func TestSchemaForCallCachesCompiledSchema(t *testing.T) {
	v, err := NewValidator(V16)
	require.NoError(t, err)

	first, err := v.SchemaForCall("Reset")
	require.NoError(t, err)
	require.Equal(t, int64(1), v.CacheStats().Sets())

	second, err := v.SchemaForCall("Reset")
	require.NoError(t, err)

	// The second resolution is a cache hit that re-reads nothing.
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), v.CacheStats().Hits())
	assert.Equal(t, int64(1), v.CacheStats().Sets())
}

func TestSchemaForCallAndResultAreDistinctKeys(t *testing.T) {
	v, err := NewValidator(V16)
	require.NoError(t, err)

	request, err := v.SchemaForCall("Heartbeat")
	require.NoError(t, err)
	response, err := v.SchemaForCallResult("Heartbeat")
	require.NoError(t, err)

	assert.NotSame(t, request, response)
	assert.Equal(t, "HeartbeatRequest", request.Document()["title"])
	assert.Equal(t, "HeartbeatResponse", response.Document()["title"])
}

func TestSchemaForCallMissingFile(t *testing.T) {
	v, err := NewValidator(V16)
	require.NoError(t, err)

	_, err = v.SchemaForCall("non-existing")
	assert.ErrorIs(t, err, fs.ErrNotExist,
		"a missing schema file is a deployment problem, not a protocol error")
}

func TestClearCache(t *testing.T) {
	v, err := NewValidator(V16)
	require.NoError(t, err)

	_, err = v.SchemaForCall("Reset")
	require.NoError(t, err)
	require.Equal(t, 1, v.cache.Size())

	v.ClearCache()
	assert.Equal(t, 0, v.cache.Size())
}

func TestWithCacheSharesCacheAcrossValidators(t *testing.T) {
	shared, err := cache.NewSimple[*Schema]()
	require.NoError(t, err)

	a, err := NewValidator(V16, WithCache(shared))
	require.NoError(t, err)
	b, err := NewValidator(V20, WithCache(shared))
	require.NoError(t, err)

	_, err = a.SchemaForCall("Heartbeat")
	require.NoError(t, err)
	_, err = b.SchemaForCall("Heartbeat")
	require.NoError(t, err)

	// Versions never collide: the cache key carries the schema directory.
	assert.Equal(t, 2, shared.Size())
}

func TestSchemaRootOverridesBuiltin(t *testing.T) {
	root := filepath.Join("testdata", "vendorschemas")
	v, err := NewValidator(V16, WithSchemaRoot(root))
	require.NoError(t, err)

	schema, err := v.SchemaForCall("Heartbeat")
	require.NoError(t, err)
	assert.Equal(t, []any{"token"}, schema.Document()["required"],
		"the override document must win over the built-in one")

	// Files absent from the override root fall back to the built-in set.
	response, err := v.SchemaForCallResult("Heartbeat")
	require.NoError(t, err)
	assert.Equal(t, "HeartbeatResponse", response.Document()["title"])
}

func TestSchemaRootPointingAtBuiltinLayout(t *testing.T) {
	// A custom schema directory is laid out flat, one document per
	// (action, kind), exactly like the embedded per-version directories.
	root := filepath.Join("schemas", "v201")
	v, err := NewValidator(V201, WithSchemaRoot(root))
	require.NoError(t, err)

	schema, err := v.SchemaForCall("Heartbeat")
	require.NoError(t, err)
	assert.Equal(t, "urn:OCPP:Cp:2:2020:3:HeartbeatRequest", schema.Document()["$id"])
}
