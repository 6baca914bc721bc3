package utils

import (
	"net/url"
	"strings"
)

// ToAbsoluteURL converts a relative URL to an absolute URL given a base URL.
func ToAbsoluteURL(base *url.URL, relative string) (string, error) {
	relURL, err := url.Parse(relative)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(relURL).String(), nil
}

// IsLocal reports whether a location denotes a local file: either a bare
// path without a scheme or an explicit file:// URL.
func IsLocal(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return true
	}
	return u.Scheme == "" || u.Scheme == "file"
}

// LocalPath extracts the filesystem path from a local location, stripping
// the file:// scheme when present.
func LocalPath(location string) string {
	if u, err := url.Parse(location); err == nil && u.Scheme == "file" && u.Path != "" {
		return u.Path
	}
	return strings.TrimPrefix(location, "file://")
}
