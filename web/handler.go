/*
Package web serves a site straight from its Markdown sources, for use while
writing. Every request discovers the content again, so new and changed files
show up on reload without a build.

	/              renders the "index" page
	/sitemap.xml   renders the sitemap
	/foo/bar.html  renders the "foo/bar" page

Anything else is answered with 404 and an empty body.
*/
package web

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/ancientlore/quire/content"
	"github.com/ancientlore/quire/render"
)

// DiscoverFunc returns a freshly discovered content store.
type DiscoverFunc func() (*content.Store, error)

// Handler returns an http.Handler that renders pages on request.
func Handler(discover DiscoverFunc, r *render.Renderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		p := req.URL.Path
		if p == "/" {
			p = "/index.html"
		}
		var (
			contentPath string
			isPage      bool
		)
		if p != "/sitemap.xml" {
			contentPath, isPage = strings.CutSuffix(strings.TrimPrefix(p, "/"), ".html")
			if !isPage {
				notFound(w)
				return
			}
		}
		store, err := discover()
		if err != nil {
			log.Printf("Handler: %s", err)
			serverError(w, err)
			return
		}
		var (
			buf         bytes.Buffer
			contentType = "text/html; charset=utf-8"
		)
		if isPage {
			item := store.Find(contentPath)
			if item == nil {
				notFound(w)
				return
			}
			b, err := r.Page(req.Context(), store, item)
			if err != nil {
				log.Printf("Handler: %s", err)
				serverError(w, err)
				return
			}
			buf.Write(b)
		} else {
			err = render.Sitemap(&buf, r.BaseURL(), store.Items)
			if err != nil {
				log.Printf("Handler: %s", err)
				serverError(w, err)
				return
			}
			contentType = "application/xml; charset=utf-8"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if req.Method == http.MethodHead {
			return
		}
		_, err = w.Write(buf.Bytes())
		if err != nil {
			log.Printf("Handler: %s", err)
		}
	})
}

// notFound answers with 404 and no body.
func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(http.StatusNotFound)
}

// serverError answers with 500 and the error message.
func serverError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
