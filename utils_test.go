package orderedmap

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertOrderedPairsEqual checks the map's content through every view and
// iterator, in both directions.
func assertOrderedPairsEqual[K comparable, V any](
	t *testing.T, om *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	assertOrderedPairsEqualFromOldest(t, om, expectedKeys, expectedValues)
	assertOrderedPairsEqualFromNewest(t, om, expectedKeys, expectedValues)
	assertInvariants(t, om)
}

func assertOrderedPairsEqualFromOldest[K comparable, V any](
	t *testing.T, om *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	require.Equal(t, len(expectedKeys), len(expectedValues))
	assertLenEqual(t, om, len(expectedKeys))

	if len(expectedKeys) == 0 {
		assert.Empty(t, om.Keys())
		assert.Empty(t, om.Values())
		assert.Empty(t, om.Items())
		return
	}

	assert.Equal(t, expectedKeys, om.Keys())
	assert.Equal(t, expectedValues, om.Values())

	i := 0
	for k, v := range om.FromOldest() {
		if assert.Less(t, i, len(expectedKeys)) {
			assert.Equal(t, expectedKeys[i], k)
			assert.Equal(t, expectedValues[i], v)
		}
		i++
	}
	assert.Equal(t, len(expectedKeys), i)

	for i, item := range om.Items() {
		assert.Equal(t, expectedKeys[i], item.Key)
		assert.Equal(t, expectedValues[i], item.Value)
	}
}

func assertOrderedPairsEqualFromNewest[K comparable, V any](
	t *testing.T, om *OrderedMap[K, V], expectedKeys []K, expectedValues []V,
) {
	t.Helper()

	i := len(expectedKeys) - 1
	for k, v := range om.FromNewest() {
		if assert.GreaterOrEqual(t, i, 0) {
			assert.Equal(t, expectedKeys[i], k)
			assert.Equal(t, expectedValues[i], v)
		}
		i--
	}
	assert.Equal(t, -1, i)
}

func assertLenEqual[K comparable, V any](t *testing.T, om *OrderedMap[K, V], expectedLen int) {
	t.Helper()

	assert.Equal(t, expectedLen, om.Len())
	assert.Equal(t, expectedLen, Len(om))
	assert.Equal(t, expectedLen == 0, om.IsEmpty())
}

// assertInvariants checks the parallel slices and the position index agree.
func assertInvariants[K comparable, V any](t *testing.T, om *OrderedMap[K, V]) {
	t.Helper()

	if om == nil {
		return
	}
	require.Len(t, om.values, len(om.keys))
	require.Len(t, om.index, len(om.keys))
	for i, key := range om.keys {
		pos, present := om.index[key]
		if assert.True(t, present, "key %v missing from index", key) {
			assert.Equal(t, i, pos, "key %v indexed at the wrong position", key)
		}
	}
}

func randomHexString(t *testing.T, length int) string {
	t.Helper()

	b := length / 2
	randBytes := make([]byte, b)

	if n, err := rand.Read(randBytes); err != nil || n != b {
		if err == nil {
			err = assert.AnError
		}
		t.Fatalf("unable to generate random bytes: %v", err)
	}

	return hex.EncodeToString(randBytes)
}
