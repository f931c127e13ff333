package shortkey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeKnownVector(t *testing.T) {
	// Base62 of 12345 is "3D7"
	key, err := Merge(12345, "AbXy")
	require.NoError(t, err)
	assert.Equal(t, "Ab3D7Xy", key)
}

func TestMergeSmallIDs(t *testing.T) {
	tests := []struct {
		id       int64
		randKey  string
		expected string
	}{
		{1, "ZzAa", "Zz1Aa"},
		{61, "AbXy", "AbzXy"},
		{62, "PrSf", "Pr10Sf"},
		{3843, "AbXy", "AbzzXy"},
		{3844, "AbXy", "Ab100Xy"},
	}

	for _, tt := range tests {
		key, err := Merge(tt.id, tt.randKey)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, key, "id=%d", tt.id)
	}
}

func TestMergeRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		id      int64
		randKey string
	}{
		{"zero id", 0, "AbXy"},
		{"negative id", -5, "AbXy"},
		{"short random key", 42, "Ab"},
		{"long random key", 42, "AbXyZ"},
		{"empty random key", 42, ""},
		{"non-ascii random key", 42, "Abéy"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Merge(tt.id, tt.randKey)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSplitKnownVector(t *testing.T) {
	id, randKey, err := Split("Ab3D7Xy")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), id)
	assert.Equal(t, "AbXy", randKey)
}

func TestSplitRejectsMalformedKeys(t *testing.T) {
	cases := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"too short", "abcd"},
		{"whitespace", "     "},
		{"bad payload char", "Ab!@#Xy"},
		{"dash payload", "Ab---Xy"},
		{"non-ascii", "Aé12Xy"},
		{"emoji", "🚀ab1Xy"},
		{"overflow", "Ab" + "zzzzzzzzzzzz" + "Xy"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Split(tt.key)
			assert.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestSplitMinimumLength(t *testing.T) {
	id, randKey, err := Split("Ab1Xy")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "AbXy", randKey)
}

func TestRoundTrip(t *testing.T) {
	ids := []int64{
		1, 10, 61, 62, 100, 3843, 3844, 238327,
		1_000_000, 1_000_000_000, 1 << 40, 1 << 53, math.MaxInt64,
	}
	randKeys := []string{"AbXy", "0011", "ZzYy", "aZbY", "9900", "zAxB"}

	for _, id := range ids {
		for _, rk := range randKeys {
			key, err := Merge(id, rk)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(key), MinKeyLen)

			gotID, gotRK, err := Split(key)
			require.NoError(t, err)
			assert.Equal(t, id, gotID, "round trip id for %q", key)
			assert.Equal(t, rk, gotRK, "round trip random key for %q", key)
		}
	}
}

func TestRoundTripSequential(t *testing.T) {
	for id := int64(1); id <= 1000; id++ {
		key, err := Merge(id, "RrSs")
		require.NoError(t, err)

		gotID, gotRK, err := Split(key)
		require.NoError(t, err)
		require.Equal(t, id, gotID)
		require.Equal(t, "RrSs", gotRK)
	}
}

func TestSplitPreservesCase(t *testing.T) {
	key, err := Merge(100, "aBcD")
	require.NoError(t, err)

	_, randKey, err := Split(key)
	require.NoError(t, err)
	assert.Equal(t, "aBcD", randKey)
}

func TestKeyLengthGrowsWithID(t *testing.T) {
	l1, _ := Merge(1, "AbCd")
	l2, _ := Merge(1000, "AbCd")
	l3, _ := Merge(1_000_000, "AbCd")

	assert.LessOrEqual(t, len(l1), len(l2))
	assert.LessOrEqual(t, len(l2), len(l3))
}

func BenchmarkMerge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Merge(123456789, "AbXy")
	}
}

func BenchmarkSplit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _, _ = Split("Ab8M0kXXy")
	}
}
