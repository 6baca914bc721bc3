package entity

// AssetResult records the outcome of inlining one distinct source
// reference from a document.
type AssetResult struct {
	// Source is the reference string as it appeared in the document.
	Source string
	// Value is the data URI on success, or Source unchanged when the
	// asset could not be inlined.
	Value string
	// Inlined reports whether Value is a data URI.
	Inlined bool
}

// ConvertedDocument is the result of one HTML batch conversion.
type ConvertedDocument struct {
	// Source is the input location the document was loaded from.
	Source string
	// Remote reports whether Source was fetched over the network rather
	// than read from the local filesystem.
	Remote bool
	// Title is the resolved document title, sanitized for use as a file
	// name.
	Title string
	// HTML is the serialized document with image references rewritten.
	HTML string
	// Assets holds one entry per distinct source reference, in the order
	// each was first seen in the document.
	Assets []AssetResult
}
