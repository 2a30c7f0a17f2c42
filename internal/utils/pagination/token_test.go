package pagination_test

import (
	"testing"
	"time"

	"github.com/granaflow/granaflow/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	date := time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, time.August, 12, 9, 30, 15, 123456789, time.UTC)

	token := pagination.EncodeToken(date, createdAt)
	gotDate, gotCreatedAt, err := pagination.DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := pagination.DecodeToken("not-base64!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = pagination.DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}
