package content

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log"

	"github.com/ancientlore/quire/markdown"
	"golang.org/x/sync/errgroup"
)

// Store is the set of content items found by one discovery pass.
// A Store is built once per build or request and is not modified
// afterwards, except by annotation of its items.
type Store struct {
	Items []*Item // In discovery order

	fsys fs.FS
	conv *markdown.Converter
}

// NewStore returns a Store over items that were created by the caller.
func NewStore(fsys fs.FS, conv *markdown.Converter, items ...*Item) *Store {
	return &Store{Items: items, fsys: fsys, conv: conv}
}

// Lookup returns the items keyed by content path.
func (s *Store) Lookup() map[string]*Item {
	m := make(map[string]*Item, len(s.Items))
	for _, item := range s.Items {
		m[item.ContentPath] = item
	}
	return m
}

// Find returns the item with the given content path, or nil.
func (s *Store) Find(contentPath string) *Item {
	for _, item := range s.Items {
		if item.ContentPath == contentPath {
			return item
		}
	}
	return nil
}

// Annotate reads the item's source and sets its Metadata and HTMLContent.
// It only does the work once per item; later calls return the first result.
// Invalid front matter does not cause an error, it is logged and stored
// in item.Invalid. Errors reading the source are returned.
func (s *Store) Annotate(item *Item) error {
	item.once.Do(func() {
		item.err = s.annotate(item)
	})
	return item.err
}

func (s *Store) annotate(item *Item) error {
	if item.Metadata != nil {
		return nil
	}
	b, err := fs.ReadFile(s.fsys, item.FilePath)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	var md Metadata
	body, err := parseFrontMatter(b, &md)
	if err != nil {
		item.Invalid = &MetadataError{ContentPath: item.ContentPath, Err: err}
		body = b
	} else if err = md.Validate(); err != nil {
		item.Invalid = &MetadataError{ContentPath: item.ContentPath, Err: err}
	}
	if item.Invalid != nil {
		log.Printf("annotate: %s", item.Invalid)
	}
	item.Metadata = &md
	item.HTMLContent = template.HTML(s.conv.Convert(body))
	return nil
}

// AnnotateAll annotates the items concurrently and waits for all of them.
// The first read error is returned.
func (s *Store) AnnotateAll(ctx context.Context, items []*Item) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return s.Annotate(item)
		})
	}
	return g.Wait()
}

// Invalid returns the items whose front matter was found to be invalid.
func (s *Store) Invalid() []*Item {
	var r []*Item
	for _, item := range s.Items {
		if item.Invalid != nil {
			r = append(r, item)
		}
	}
	return r
}
