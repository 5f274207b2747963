package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Len(t, id, 12)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("15/03/2024")
	assert.Error(t, err)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", PrettyJson([]byte(`{"a":1}`)))
	assert.Equal(t, "não-json", PrettyJson([]byte("não-json")))
}
