package mediatype

import "bytes"

// signatures is the ordered magic-number table. Entries are tested in
// order and the first match wins, so more specific patterns come first.
var signatures = []struct {
	offset  int
	pattern []byte
	mt      MediaType
}{
	{4, []byte("ftypavif"), AVIF},
	{0, []byte("GIF87a"), GIF},
	{0, []byte("GIF89a"), GIF},
	{0, []byte{0xFF, 0xD8, 0xFF}, JPEG},
	{0, []byte("BM"), BMP},
	{0, []byte("BA"), BMP},
	{0, []byte("CI"), BMP},
	{0, []byte("CP"), BMP},
	{0, []byte("IC"), BMP},
	{0, []byte("PT"), BMP},
	{0, []byte{0x00, 0x00, 0x01, 0x00}, Icon},
	{0, []byte{0x00, 0x00, 0x02, 0x00}, Icon},
	{0, []byte{0x49, 0x49, 0x2A, 0x00}, TIFF},
	{0, []byte{0x4D, 0x4D, 0x00, 0x2A}, TIFF},
}

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// svgScanLimit caps how far into the buffer the SVG substring scan looks.
const svgScanLimit = 1000

// SniffBytes determines the media type from a raw byte buffer alone.
// Buffers too short for a given pattern simply fail to match it.
func SniffBytes(data []byte) MediaType {
	if bytes.HasPrefix(data, pngSignature) {
		return sniffPNG(data)
	}
	if bytes.HasPrefix(data, []byte("RIFF")) && matchAt(data, 8, []byte("WEBPVP8")) {
		return WebP
	}
	for _, sig := range signatures {
		if matchAt(data, sig.offset, sig.pattern) {
			return sig.mt
		}
	}
	return sniffSVG(data)
}

func matchAt(data []byte, offset int, pattern []byte) bool {
	if len(data) < offset+len(pattern) {
		return false
	}
	return bytes.Equal(data[offset:offset+len(pattern)], pattern)
}

// sniffPNG disambiguates animated PNG from plain PNG: the stream is APNG
// when an acTL chunk marker occurs strictly before the first IDAT marker.
func sniffPNG(data []byte) MediaType {
	actl := bytes.Index(data, []byte("acTL"))
	idat := bytes.Index(data, []byte("IDAT"))
	if actl >= 0 && idat >= 0 && actl < idat {
		return APNG
	}
	return PNG
}

// sniffSVG scans at most the first svgScanLimit bytes for a literal
// "<svg" or "<SVG" substring.
func sniffSVG(data []byte) MediaType {
	head := data
	if len(head) > svgScanLimit {
		head = head[:svgScanLimit]
	}
	if bytes.Contains(head, []byte("<svg")) || bytes.Contains(head, []byte("<SVG")) {
		return SVG
	}
	return Unknown
}
