//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutator edits a request body decoded into a map.
type Mutator func(map[string]any)

// Body round-trips v through JSON so tests can start from a valid request
// DTO and break one field at a time.
func Body(t *testing.T, v any, muts ...Mutator) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	m := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

func Set(key string, value any) Mutator {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Mutator {
	return func(m map[string]any) { delete(m, key) }
}
