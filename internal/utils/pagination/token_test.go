package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeCursor(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(createdAt, "job-42")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeCursor(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at time should match after decode")
	assert.Equal(t, "job-42", decodedID)
}

func TestDecodeCursorNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	createdAt := time.Date(2024, 1, 2, 8, 0, 0, 0, loc)

	decodedAt, _, err := DecodeCursor(EncodeCursor(createdAt, "id"))
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt))
	assert.Equal(t, time.UTC, decodedAt.Location())
}

func TestDecodeCursorError(t *testing.T) {
	_, _, err := DecodeCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.StdEncoding.EncodeToString([]byte("2024-05-15T00:00:00Z"))
	_, _, err = DecodeCursor(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := EncodeMultiFieldToken("notadate", "id")
	_, _, err = DecodeCursor(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")

	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
