package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of key, or skips the test when it is unset.
// Tests against real cloud services or databases are gated this way.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	return GetEnvsOrSkip(t, key)[0]
}

// GetEnvsOrSkip returns the values of keys in order. The test is skipped
// naming the first unset variable.
func GetEnvsOrSkip(t *testing.T, keys ...string) []string {
	t.Helper()
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = os.Getenv(key)
		if values[i] == "" {
			t.Skipf("%s is not set, skipping test", key)
		}
	}
	return values
}
