package structure

import (
	"strings"
	"testing"

	"github.com/ancientlore/quire/content"
)

func items(paths ...string) []*content.Item {
	r := make([]*content.Item, len(paths))
	for i, p := range paths {
		r[i] = &content.Item{ContentPath: p, FilePath: p + ".md"}
	}
	return r
}

func paths(items []*content.Item) []string {
	r := make([]string, len(items))
	for i, item := range items {
		r[i] = item.ContentPath
	}
	return r
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var site = items(
	"index",
	"about",
	"blog/index",
	"blog/a",
	"blog/b",
	"blog/c/index",
	"blog/c/deep",
	"blog/c/d/index",
	"blogroll/x",
	"docs/guide/intro",
)

func TestIsIndex(t *testing.T) {
	var tests = map[string]bool{
		"index":        true,
		"blog/index":   true,
		"a/b/c/index":  true,
		"myindex":      false,
		"blog/reindex": false,
		"":             false,
		"about":        false,
	}
	for p, want := range tests {
		if got := IsIndex(p); got != want {
			t.Errorf("IsIndex(%q) = %v, expected %v", p, got, want)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	var tests = []struct {
		path string
		want []string
	}{
		{"index", nil},
		{"about", []string{"index"}},
		{"blog/index", []string{"index"}},
		{"blog/a", []string{"index", "blog/index"}},
		{"blog/c/index", []string{"index", "blog/index"}},
		{"blog/c/deep", []string{"index", "blog/index", "blog/c/index"}},
		{"blog/c/d/index", []string{"index", "blog/index", "blog/c/index"}},
		{"docs/guide/intro", []string{"index"}},
		{"not/there", []string{"index"}},
	}
	for _, test := range tests {
		got := paths(Breadcrumbs(site, test.path))
		if !equal(got, test.want) {
			t.Errorf("Breadcrumbs(%q) = %v, expected %v", test.path, got, test.want)
		}
	}
}

func TestBreadcrumbsWithoutRoot(t *testing.T) {
	got := paths(Breadcrumbs(items("blog/index", "blog/a"), "blog/a"))
	if !equal(got, []string{"blog/index"}) {
		t.Errorf("Unexpected breadcrumbs %v", got)
	}
	if got := Breadcrumbs(items("a/b/c"), "a/b/c"); len(got) != 0 {
		t.Errorf("Expected no breadcrumbs, got %v", paths(got))
	}
}

func TestBreadcrumbsRootToLeaf(t *testing.T) {
	for _, item := range site {
		crumbs := Breadcrumbs(site, item.ContentPath)
		for i := 1; i < len(crumbs); i++ {
			prev := folder(crumbs[i-1].ContentPath)
			cur := folder(crumbs[i].ContentPath)
			if prev != "" && !strings.HasPrefix(cur, prev+"/") {
				t.Errorf("%q: %q is not an ancestor of %q", item.ContentPath, crumbs[i-1].ContentPath, crumbs[i].ContentPath)
			}
			if prev == "" && i != 1 {
				t.Errorf("%q: root must come first", item.ContentPath)
			}
		}
		for _, c := range crumbs {
			if c == item {
				t.Errorf("%q: item is its own breadcrumb", item.ContentPath)
			}
		}
	}
}

func TestListing(t *testing.T) {
	var tests = []struct {
		path string
		want []string
	}{
		{"index", []string{"about", "blog/index"}},
		{"blog/index", []string{"blog/a", "blog/b", "blog/c/index"}},
		{"blog/c/index", []string{"blog/c/deep", "blog/c/d/index"}},
		{"blog/c/d/index", nil},
		{"docs/index", nil},
	}
	for _, test := range tests {
		got := paths(Listing(site, test.path))
		if !equal(got, test.want) {
			t.Errorf("Listing(%q) = %v, expected %v", test.path, got, test.want)
		}
	}
}

func TestListingDepth(t *testing.T) {
	for _, item := range site {
		if !IsIndex(item.ContentPath) {
			continue
		}
		base := folder(item.ContentPath)
		for _, l := range Listing(site, item.ContentPath) {
			if l == item {
				t.Errorf("%q lists itself", item.ContentPath)
			}
			rel, ok := relative(base, l.ContentPath)
			if !ok {
				t.Errorf("%q lists %q from another folder", item.ContentPath, l.ContentPath)
			}
			depth := strings.Count(strings.TrimSuffix(rel, indexSuffix), "/")
			if depth > 0 {
				t.Errorf("%q lists %q which is too deep", item.ContentPath, l.ContentPath)
			}
		}
	}
}

func TestExample(t *testing.T) {
	s := items("index", "blog/index", "blog/a", "blog/b", "blog/c/index")
	if got := paths(Listing(s, "blog/index")); !equal(got, []string{"blog/a", "blog/b", "blog/c/index"}) {
		t.Errorf("Unexpected listing %v", got)
	}
	if got := paths(Breadcrumbs(s, "blog/a")); !equal(got, []string{"index", "blog/index"}) {
		t.Errorf("Unexpected breadcrumbs %v", got)
	}
}

func TestTree(t *testing.T) {
	out := Tree("site", site, func(item *content.Item) string {
		return "* " + item.ContentPath
	})
	for _, want := range []string{"site", "blog/", "c/", "* blog/c/deep", "docs/", "guide/", "* about"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in tree:\n%s", want, out)
		}
	}
	plain := Tree("site", items("blog/a"), nil)
	if !strings.Contains(plain, "blog/") || !strings.Contains(plain, "a") {
		t.Errorf("Unexpected tree:\n%s", plain)
	}
}
