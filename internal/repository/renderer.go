package repository

import "context"

// PageRenderer defines the contract for loading a document in a
// scripting-capable rendering context. Render returns the outer HTML of
// the page after scripts have run and lazy-load triggers have fired.
//
// The renderer is an optional capability: the batch converter treats a
// nil renderer as "scripting unavailable" and falls back to a plain load.
type PageRenderer interface {
	Render(ctx context.Context, url string) (string, error)
}
