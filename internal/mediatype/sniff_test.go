package mediatype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pngData(chunks ...string) []byte {
	data := append([]byte{}, pngSignature...)
	for _, c := range chunks {
		data = append(data, []byte(c)...)
	}
	return data
}

func TestFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want MediaType
	}{
		{".png", PNG},
		{".PNG", PNG},
		{"png", PNG},
		{".jpg", JPEG},
		{".jfif", JPEG},
		{".pjpeg", JPEG},
		{".pjp", JPEG},
		{".jpe", JPEG},
		{".jif", JPEG},
		{".jfi", JPEG},
		{".apng", APNG},
		{".avif", AVIF},
		{".gif", GIF},
		{".svg", SVG},
		{".webp", WebP},
		{".bmp", BMP},
		{".dib", BMP},
		{".ico", Icon},
		{".cur", Icon},
		{".tiff", TIFF},
		{".tif", TIFF},
		{".xyz", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromExtension(tt.ext), "extension %q", tt.ext)
	}
}

func TestSniffExtensionWinsOverSignature(t *testing.T) {
	// Valid PNG bytes but a .jpg extension: the extension takes priority.
	assert.Equal(t, JPEG, Sniff(".jpg", pngData("IDAT")))
}

func TestSniffBytesSignatures(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want MediaType
	}{
		{"gif87a", []byte("GIF87a......"), GIF},
		{"gif89a", []byte("GIF89a......"), GIF},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, JPEG},
		{"avif", append([]byte{0x00, 0x00, 0x00, 0x20}, []byte("ftypavif")...), AVIF},
		{"webp", []byte("RIFF\x10\x00\x00\x00WEBPVP8 "), WebP},
		{"bmp", []byte("BM\x00\x00"), BMP},
		{"bmp array", []byte("BA\x00\x00"), BMP},
		{"ico", []byte{0x00, 0x00, 0x01, 0x00, 0x01}, Icon},
		{"cur", []byte{0x00, 0x00, 0x02, 0x00, 0x01}, Icon},
		{"tiff little endian", []byte{0x49, 0x49, 0x2A, 0x00}, TIFF},
		{"tiff big endian", []byte{0x4D, 0x4D, 0x00, 0x2A}, TIFF},
		{"svg", []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`), SVG},
		{"svg uppercase", []byte(`<SVG></SVG>`), SVG},
		{"unknown", []byte{0x00, 0x01, 0x02}, Unknown},
		{"empty", nil, Unknown},
		{"truncated jpeg", []byte{0xFF, 0xD8}, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffBytes(tt.data))
		})
	}
}

func TestSniffBytesPNGVersusAPNG(t *testing.T) {
	assert.Equal(t, PNG, SniffBytes(pngData("IDAT")))
	assert.Equal(t, APNG, SniffBytes(pngData("acTL", "IDAT")))
	assert.Equal(t, PNG, SniffBytes(pngData("IDAT", "acTL")))
	// Signature alone, no chunk markers at all.
	assert.Equal(t, PNG, SniffBytes(pngData()))
}

func TestSniffBytesSVGScanLimit(t *testing.T) {
	// The "<svg" substring beyond the first 1000 bytes is not considered.
	padded := append(bytes.Repeat([]byte{' '}, svgScanLimit), []byte("<svg/>")...)
	assert.Equal(t, Unknown, SniffBytes(padded))

	inside := append(bytes.Repeat([]byte{' '}, svgScanLimit-4), []byte("<svg/>")...)
	assert.Equal(t, SVG, SniffBytes(inside))
}

func TestSniffDeterministic(t *testing.T) {
	data := pngData("acTL", "IDAT")
	first := Sniff("", data)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Sniff("", data))
	}
}
