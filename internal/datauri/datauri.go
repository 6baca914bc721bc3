// Package datauri renders byte payloads as RFC 2397 data URIs.
package datauri

import (
	"encoding/base64"

	"github.com/user/image-inliner/internal/mediatype"
)

// Encode returns a base64 data URI for the payload. An Unknown media type
// is encoded verbatim, producing "data:;base64,..." — callers that want to
// skip untyped payloads must check the type before encoding.
func Encode(mt mediatype.MediaType, data []byte) string {
	return "data:" + string(mt) + ";base64," + base64.StdEncoding.EncodeToString(data)
}
