// Package mediatype identifies image formats from file extensions and
// magic-number signatures. It performs no I/O.
package mediatype

import "strings"

// MediaType is a MIME media type string such as "image/png". The zero
// value Unknown means the format could not be determined.
type MediaType string

const (
	APNG    MediaType = "image/apng"
	AVIF    MediaType = "image/avif"
	BMP     MediaType = "image/bmp"
	GIF     MediaType = "image/gif"
	Icon    MediaType = "image/x-icon"
	JPEG    MediaType = "image/jpeg"
	PNG     MediaType = "image/png"
	SVG     MediaType = "image/svg+xml"
	TIFF    MediaType = "image/tiff"
	WebP    MediaType = "image/webp"
	Unknown MediaType = ""
)

var byExtension = map[string]MediaType{
	".apng":  APNG,
	".avif":  AVIF,
	".bmp":   BMP,
	".cur":   Icon,
	".dib":   BMP,
	".gif":   GIF,
	".ico":   Icon,
	".jfi":   JPEG,
	".jfif":  JPEG,
	".jif":   JPEG,
	".jpe":   JPEG,
	".jpeg":  JPEG,
	".jpg":   JPEG,
	".pjp":   JPEG,
	".pjpeg": JPEG,
	".png":   PNG,
	".svg":   SVG,
	".tif":   TIFF,
	".tiff":  TIFF,
	".webp":  WebP,
}

// FromExtension looks up a media type by file extension. The lookup is
// case-insensitive and accepts the extension with or without its leading
// dot. Unrecognized extensions map to Unknown.
func FromExtension(ext string) MediaType {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return Unknown
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return byExtension[ext]
}

// Sniff determines the media type of an image. The extension hint takes
// priority; when it is absent or unrecognized the byte signature decides.
func Sniff(ext string, data []byte) MediaType {
	if mt := FromExtension(ext); mt != Unknown {
		return mt
	}
	return SniffBytes(data)
}
