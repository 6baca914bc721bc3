package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/image-inliner/internal/datauri"
	"github.com/user/image-inliner/internal/mediatype"
)

func TestImageConvert(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.data["https://example.com/pic.png"] = pngBytes

	uc := NewImageConverter(fetcher)
	uri, err := uc.Convert(context.Background(), "https://example.com/pic.png")
	require.NoError(t, err)
	assert.Equal(t, datauri.Encode(mediatype.PNG, pngBytes), uri)
}

func TestImageConvertSniffsBytesWhenExtensionUnknown(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.data["/tmp/picture"] = pngBytes

	uc := NewImageConverter(fetcher)
	uri, err := uc.Convert(context.Background(), "/tmp/picture")
	require.NoError(t, err)
	assert.Equal(t, datauri.Encode(mediatype.PNG, pngBytes), uri)
}

func TestImageConvertUnknownTypeStillEncodes(t *testing.T) {
	fetcher := newStubFetcher()
	fetcher.data["/tmp/blob.xyz"] = []byte{0x00, 0x01, 0x02}

	uc := NewImageConverter(fetcher)
	uri, err := uc.Convert(context.Background(), "/tmp/blob.xyz")
	require.NoError(t, err)
	assert.Equal(t, "data:;base64,AAEC", uri)
}

func TestImageConvertFetchFailurePropagates(t *testing.T) {
	uc := NewImageConverter(newStubFetcher())
	_, err := uc.Convert(context.Background(), "https://example.com/missing.png")
	assert.Error(t, err)
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		location string
		want     string
	}{
		{"https://example.com/a/pic.PNG?v=2", ".PNG"},
		{"/tmp/photo.jpeg", ".jpeg"},
		{"https://example.com/noext", ""},
		{"relative/img.webp", ".webp"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extensionOf(tt.location), "location %q", tt.location)
	}
}
