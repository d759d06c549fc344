/*
Package structure derives navigation from the content paths of a flat set
of content items. There is no stored tree; the hierarchy is read from the
"/" separated segments of each content path on demand.

An index page is an item whose content path is "index" or ends in "/index".
It stands for the folder it lives in:

	index            the site root
	blog/index       the "blog" folder
	blog/2021/index  the "blog/2021" folder

Breadcrumbs of an item are the index pages of the folders above it, root
first. The listing of an index page holds the items in its folder plus the
index pages of its direct subfolders. Listings are ordered by the "order"
front matter field, which must be unique within a listing.
*/
package structure

import (
	"strings"

	"github.com/ancientlore/quire/content"
)

const (
	// RootIndex is the content path of the site's home page.
	RootIndex = "index"

	indexSuffix = "/index"
)

// IsIndex reports whether contentPath names an index page.
func IsIndex(contentPath string) bool {
	return contentPath == RootIndex || strings.HasSuffix(contentPath, indexSuffix)
}

// lookup maps the items by content path. The last item wins when
// content paths are repeated.
func lookup(items []*content.Item) map[string]*content.Item {
	m := make(map[string]*content.Item, len(items))
	for _, item := range items {
		m[item.ContentPath] = item
	}
	return m
}

// Breadcrumbs returns the index pages above contentPath, ordered from the
// root to the closest folder. The item at contentPath is never included.
func Breadcrumbs(items []*content.Item, contentPath string) []*content.Item {
	var (
		crumbs []*content.Item
		m      = lookup(items)
	)
	if root, ok := m[RootIndex]; ok && contentPath != RootIndex {
		crumbs = append(crumbs, root)
	}
	// With "foo/bar/baz" this checks "foo/index" and "foo/bar/index".
	parts := strings.Split(contentPath, "/")
	for i := 1; i < len(parts); i++ {
		candidate := strings.Join(parts[:i], "/") + indexSuffix
		if candidate == contentPath {
			continue
		}
		if item, ok := m[candidate]; ok {
			crumbs = append(crumbs, item)
		}
	}
	return crumbs
}

// Listing returns the items shown on the index page at contentPath: the
// other items in the same folder and the index pages of direct subfolders.
// Items are returned in discovery order; use SortListing to order them.
func Listing(items []*content.Item, contentPath string) []*content.Item {
	var (
		list []*content.Item
		base = folder(contentPath)
	)
	for _, item := range items {
		if item.ContentPath == contentPath {
			continue
		}
		rel, ok := relative(base, item.ContentPath)
		if !ok {
			continue
		}
		if !strings.Contains(rel, "/") {
			list = append(list, item)
			continue
		}
		if sub, found := strings.CutSuffix(rel, indexSuffix); found && !strings.Contains(sub, "/") {
			list = append(list, item)
		}
	}
	return list
}

// folder returns the folder an index page stands for, "" being the root.
func folder(contentPath string) string {
	if contentPath == RootIndex {
		return ""
	}
	return strings.TrimSuffix(contentPath, indexSuffix)
}

// relative returns contentPath relative to the base folder, and false
// when contentPath is not inside base.
func relative(base, contentPath string) (string, bool) {
	if base == "" {
		return contentPath, true
	}
	return strings.CutPrefix(contentPath, base+"/")
}
