package usecase

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/user/image-inliner/internal/datauri"
	"github.com/user/image-inliner/internal/mediatype"
	"github.com/user/image-inliner/internal/repository"
)

// ImageConverter converts a single image location into a data URI.
type ImageConverter interface {
	Convert(ctx context.Context, location string) (string, error)
}

type imageConverterUseCase struct {
	fetcher repository.ResourceFetcher
}

// NewImageConverter creates the single-image conversion use case.
func NewImageConverter(fetcher repository.ResourceFetcher) ImageConverter {
	return &imageConverterUseCase{fetcher: fetcher}
}

// Convert fetches the image, sniffs its media type and encodes it as a
// data URI. Fetch failures propagate to the caller. An unknown media type
// is not special-cased: the result is "data:;base64,...".
func (uc *imageConverterUseCase) Convert(ctx context.Context, location string) (string, error) {
	data, err := uc.fetcher.Fetch(ctx, location)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", location, err)
	}
	mt := mediatype.Sniff(extensionOf(location), data)
	return datauri.Encode(mt, data), nil
}

// extensionOf derives the file extension from a location's path component.
func extensionOf(location string) string {
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		return path.Ext(u.Path)
	}
	return path.Ext(location)
}
