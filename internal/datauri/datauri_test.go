package datauri

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/image-inliner/internal/mediatype"
)

func TestEncode(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4E, 0x47}
	got := Encode(mediatype.PNG, payload)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload), got)
}

func TestEncodeRoundTrip(t *testing.T) {
	payload := []byte("not really an image, but bytes are bytes \x00\xff")
	uri := Encode(mediatype.GIF, payload)

	_, encoded, ok := strings.Cut(uri, ";base64,")
	require.True(t, ok)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestEncodeUnknownTypeIsVerbatim(t *testing.T) {
	got := Encode(mediatype.Unknown, []byte{0x01})
	assert.True(t, strings.HasPrefix(got, "data:;base64,"), "got %q", got)
}

func TestEncodeEmptyPayload(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,", Encode(mediatype.PNG, nil))
}
