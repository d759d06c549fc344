package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/ancientlore/quire/content"
)

// rawPrefix marks content that is left out of the sitemap.
const rawPrefix = "raw/"

var sitemapTpl = template.Must(template.New("sitemap").Parse(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9" xmlns:xhtml="http://www.w3.org/1999/xhtml">
{{range .}}<url>
<loc>{{html .}}</loc>
</url>
{{end}}</urlset>
`))

// SitemapURLs returns the URLs listed in the sitemap, skipping the "raw" folder.
func SitemapURLs(baseURL string, items []*content.Item) []string {
	var urls []string
	for _, item := range items {
		if strings.HasPrefix(item.ContentPath, rawPrefix) {
			continue
		}
		urls = append(urls, FormatURL(baseURL, item.ContentPath))
	}
	return urls
}

// Sitemap writes the XML sitemap of the items to w.
func Sitemap(w io.Writer, baseURL string, items []*content.Item) error {
	err := sitemapTpl.Execute(w, SitemapURLs(baseURL, items))
	if err != nil {
		return fmt.Errorf("Sitemap: %w", err)
	}
	return nil
}
