package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	t.Parallel()

	for _, offset := range []int{0, 1, 20, 999999} {
		token := EncodeCursor(offset)
		decoded, err := DecodeCursor(token)
		require.NoError(t, err)
		assert.Equal(t, offset, decoded)
	}
}

func TestDecodeCursorEmptyMeansFirstPage(t *testing.T) {
	t.Parallel()

	offset, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Zero(t, offset)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, token := range []string{
		"not base64 !!",
		"YWJjZGVm",         // base64 but wrong payload
		"bzotNQ==",         // "o:-5", negative offset
		"bzphYmM=",         // "o:abc", non-numeric offset
	} {
		_, err := DecodeCursor(token)
		assert.ErrorIs(t, err, ErrInvalidCursor, "token %q", token)
	}
}
