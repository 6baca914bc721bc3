package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"github.com/user/image-inliner/internal/datauri"
	"github.com/user/image-inliner/internal/entity"
	"github.com/user/image-inliner/internal/mediatype"
	"github.com/user/image-inliner/internal/repository"
	"github.com/user/image-inliner/pkg/metrics"
	"github.com/user/image-inliner/pkg/utils"
)

// HTMLConverter rewrites every img and embed reference in a document
// into a self-contained data URI.
type HTMLConverter interface {
	Convert(ctx context.Context, location string, useScripting bool) (*entity.ConvertedDocument, error)
}

type htmlConverterUseCase struct {
	fetcher  repository.ResourceFetcher
	renderer repository.PageRenderer // nil when scripting is unavailable
}

// NewHTMLConverter creates the HTML batch conversion use case. A nil
// renderer disables scripting support without being an error.
func NewHTMLConverter(fetcher repository.ResourceFetcher, renderer repository.PageRenderer) HTMLConverter {
	return &htmlConverterUseCase{
		fetcher:  fetcher,
		renderer: renderer,
	}
}

// imageRef ties a document element to its effective source reference.
type imageRef struct {
	sel    *goquery.Selection
	source string
}

// Convert runs the full pipeline: load, parse, resolve the title,
// discover image references, inline them concurrently, rewrite the
// document and serialize it. A failed asset never fails the document;
// its reference is left unchanged.
func (uc *htmlConverterUseCase) Convert(ctx context.Context, location string, useScripting bool) (*entity.ConvertedDocument, error) {
	remote := !utils.IsLocal(location)

	pageHTML, err := uc.loadDocument(ctx, location, useScripting)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", location, err)
	}

	title := resolveTitle(doc, location)

	refs := collectImageRefs(doc)
	assets, bySource := uc.inlineAll(ctx, refs, documentBase(location))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, ref := range refs {
		if value, ok := bySource[ref.source]; ok {
			ref.sel.SetAttr("src", value)
		}
	}

	if remote {
		prependProvenance(doc, location)
	}

	out, err := goquery.OuterHtml(doc.Find("html").First())
	if err != nil {
		return nil, fmt.Errorf("serialize document %s: %w", location, err)
	}

	metrics.DocumentsConvertedTotal.Inc()

	return &entity.ConvertedDocument{
		Source: location,
		Remote: remote,
		Title:  utils.SanitizeFilename(title),
		HTML:   out,
		Assets: assets,
	}, nil
}

// loadDocument obtains the document markup, through the renderer when
// scripting is requested and available, otherwise via a plain fetch.
func (uc *htmlConverterUseCase) loadDocument(ctx context.Context, location string, useScripting bool) (string, error) {
	if useScripting && uc.renderer != nil {
		target, err := browserURL(location)
		if err != nil {
			return "", err
		}
		return uc.renderer.Render(ctx, target)
	}
	text, err := uc.fetcher.FetchText(ctx, location)
	if err != nil {
		return "", fmt.Errorf("load document %s: %w", location, err)
	}
	return text, nil
}

// browserURL turns a location into something the browser can navigate
// to; local paths become file:// URLs.
func browserURL(location string) (string, error) {
	if !utils.IsLocal(location) {
		return location, nil
	}
	abs, err := filepath.Abs(utils.LocalPath(location))
	if err != nil {
		return "", fmt.Errorf("resolve local path %s: %w", location, err)
	}
	return (&url.URL{Scheme: "file", Path: abs}).String(), nil
}

// documentBase returns the URL that relative asset references resolve
// against, or nil when the location cannot be parsed.
func documentBase(location string) *url.URL {
	if utils.IsLocal(location) {
		abs, err := filepath.Abs(utils.LocalPath(location))
		if err != nil {
			return nil
		}
		return &url.URL{Scheme: "file", Path: abs}
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil
	}
	return u
}

// resolveTitle picks the first non-empty candidate among the title
// element, the og:title meta tag and the location's file stem. When a
// fallback source wins, the document gains a title element carrying it.
func resolveTitle(doc *goquery.Document, location string) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}

	title := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).First().AttrOr("content", ""))
	if title == "" {
		title = strings.TrimSpace(fileStem(location))
	}
	if title != "" {
		setDocumentTitle(doc, title)
	}
	return title
}

// fileStem extracts the file name without extension from a location's
// path component.
func fileStem(location string) string {
	p := location
	if u, err := url.Parse(location); err == nil && u.Path != "" {
		p = u.Path
	}
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// setDocumentTitle writes title into the document's title element,
// creating head and title (prepended) when absent.
func setDocumentTitle(doc *goquery.Document, title string) {
	if doc.Find("head").Length() == 0 {
		doc.Find("html").First().PrependHtml("<head></head>")
	}
	if doc.Find("head title").Length() == 0 {
		doc.Find("head").First().PrependHtml("<title></title>")
	}
	doc.Find("head title").First().SetText(title)
}

// collectImageRefs enumerates img and embed elements in document order
// and resolves each element's effective source: the trimmed src
// attribute, else the trimmed data-src attribute. Elements with no
// source or an already-inlined data: source are skipped.
func collectImageRefs(doc *goquery.Document) []imageRef {
	var refs []imageRef
	doc.Find("img, embed").Each(func(_ int, sel *goquery.Selection) {
		source := strings.TrimSpace(sel.AttrOr("src", ""))
		if source == "" {
			source = strings.TrimSpace(sel.AttrOr("data-src", ""))
		}
		if source == "" || strings.HasPrefix(source, "data:") {
			return
		}
		refs = append(refs, imageRef{sel: sel, source: source})
	})
	return refs
}

// inlineAll fetches every distinct source concurrently and maps it to a
// data URI, or to itself when the fetch fails or the media type is
// unknown. Each distinct source is fetched exactly once regardless of
// how many elements reference it.
func (uc *htmlConverterUseCase) inlineAll(ctx context.Context, refs []imageRef, base *url.URL) ([]entity.AssetResult, map[string]string) {
	var plan []string
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.source]; ok {
			continue
		}
		seen[ref.source] = struct{}{}
		plan = append(plan, ref.source)
	}

	results := make([]entity.AssetResult, len(plan))
	g, gCtx := errgroup.WithContext(ctx)
	for i, source := range plan {
		i, source := i, source
		g.Go(func() error {
			results[i] = uc.inlineOne(gCtx, source, base)
			return nil
		})
	}
	_ = g.Wait() // per-asset failures fall back, they never abort the document

	bySource := make(map[string]string, len(results))
	for _, r := range results {
		bySource[r.Source] = r.Value
	}
	return results, bySource
}

// inlineOne converts a single source reference. Any failure degrades to
// keeping the original reference and is logged at info level.
func (uc *htmlConverterUseCase) inlineOne(ctx context.Context, source string, base *url.URL) entity.AssetResult {
	fallback := entity.AssetResult{Source: source, Value: source}

	target := source
	if base != nil {
		abs, err := utils.ToAbsoluteURL(base, source)
		if err != nil {
			metrics.AssetsFetchedTotal.WithLabelValues("fallback").Inc()
			slog.Info("cannot resolve asset reference, keeping original", "source", source, "error", err)
			return fallback
		}
		target = abs
	}

	start := time.Now()
	data, err := uc.fetcher.Fetch(ctx, target)
	if err != nil {
		metrics.AssetsFetchedTotal.WithLabelValues("fallback").Inc()
		slog.Info("asset fetch failed, keeping original reference", "source", source, "error", err)
		return fallback
	}
	metrics.AssetFetchDuration.Observe(time.Since(start).Seconds())

	mt := mediatype.Sniff(extensionOf(target), data)
	if mt == mediatype.Unknown {
		metrics.AssetsFetchedTotal.WithLabelValues("fallback").Inc()
		slog.Info("unrecognized media type, keeping original reference", "source", source)
		return fallback
	}

	metrics.AssetsFetchedTotal.WithLabelValues("inlined").Inc()
	return entity.AssetResult{Source: source, Value: datauri.Encode(mt, data), Inlined: true}
}

// prependProvenance inserts a comment recording the original location as
// the first child of the document root.
func prependProvenance(doc *goquery.Document, location string) {
	root := doc.Find("html").First()
	if root.Length() == 0 {
		return
	}
	node := root.Get(0)
	comment := &html.Node{
		Type: html.CommentNode,
		Data: fmt.Sprintf(" saved from %s ", location),
	}
	node.InsertBefore(comment, node.FirstChild)
}
