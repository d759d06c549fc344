/*
Package render turns annotated content items into HTML pages and sitemaps.

Every page gets a navigation bar built from its breadcrumbs, shown in both
the header and the footer. Blog pages with a date show it after the
breadcrumbs. Index pages also list the pages of their folder, ordered by
the "order" front matter field.

URLs are absolute, built from the site's base URL and the content path:

	https://example.com/blog/first-post.html
*/
package render

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/ancientlore/quire/content"
	"github.com/ancientlore/quire/structure"
)

//go:embed page.html
var pageTemplate string

// dateLayout is how blog dates are shown.
const dateLayout = "2006-01-02"

// pageData is what is passed to the page template.
type pageData struct {
	Page        *content.Item   // page being rendered
	Breadcrumbs []*content.Item // index pages above the page
	Listing     []*content.Item // sorted listing for index pages
	Date        string          // formatted date for blog pages
}

// Renderer renders pages for a site.
type Renderer struct {
	baseURL string
	tpl     *template.Template
}

// New returns a Renderer producing URLs under baseURL.
func New(baseURL string) (*Renderer, error) {
	r := &Renderer{baseURL: baseURL}
	funcMap := template.FuncMap{
		"url": r.URL,
	}
	tpl, err := template.New("quire").Funcs(funcMap).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("render.New: %w", err)
	}
	r.tpl = tpl
	return r, nil
}

// BaseURL returns the base URL of the site.
func (r *Renderer) BaseURL() string {
	return r.baseURL
}

// URL returns the absolute URL of the given content path.
func (r *Renderer) URL(contentPath string) string {
	return FormatURL(r.baseURL, contentPath)
}

// FormatURL joins the base URL and the content path into the URL of the
// page's HTML file. The empty content path is the root index page.
func FormatURL(baseURL, contentPath string) string {
	if contentPath == "" {
		return baseURL + "/index.html"
	}
	return baseURL + "/" + contentPath + ".html"
}

// Page renders the item as a complete HTML page. Breadcrumbs and listed
// items are annotated as needed. Rendering an index page whose listing has
// repeated order values fails with a *structure.OrderError.
func (r *Renderer) Page(ctx context.Context, store *content.Store, item *content.Item) ([]byte, error) {
	err := store.Annotate(item)
	if err != nil {
		return nil, fmt.Errorf("Page: %w", err)
	}
	data := pageData{
		Page:        item,
		Breadcrumbs: structure.Breadcrumbs(store.Items, item.ContentPath),
	}
	err = store.AnnotateAll(ctx, data.Breadcrumbs)
	if err != nil {
		return nil, fmt.Errorf("Page: %w", err)
	}
	if structure.IsIndex(item.ContentPath) {
		data.Listing = structure.Listing(store.Items, item.ContentPath)
		err = store.AnnotateAll(ctx, data.Listing)
		if err != nil {
			return nil, fmt.Errorf("Page: %w", err)
		}
		err = structure.SortListing(item.ContentPath, data.Listing)
		if err != nil {
			return nil, fmt.Errorf("Page: %w", err)
		}
	}
	if md := item.Metadata; md.Type == content.TypeBlog && !md.Date.IsZero() {
		data.Date = md.Date.UTC().Format(dateLayout)
	}
	var buf bytes.Buffer
	err = r.tpl.ExecuteTemplate(&buf, "page", data)
	if err != nil {
		return nil, fmt.Errorf("Page: %w", err)
	}
	return buf.Bytes(), nil
}
