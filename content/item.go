/*
Package content discovers Markdown files in a source tree and turns them into
content items.

Discovery walks the source file system once and records, for every Markdown
file, its location and its content path. The content path is the slash
separated path of the file relative to the source root, without extension:

	blog/first-post.md   ->  blog/first-post
	blog/index.md        ->  blog/index
	blog/_home.md        ->  blog/index
	index.md             ->  index

Files and folders starting with "." are ignored. Two files that map to the
same content path are reported as a *DuplicateError.

Items are annotated lazily. Annotation reads the file, parses its front matter
and renders the Markdown body. Front matter may be YAML, delimited by "---", or
TOML, delimited by "+++":

	---
	type: blog
	title: My glorious page
	date: 2021-04-03
	description: Things I learned
	order: 3
	tags: [go, web]
	---
	# My glorious page

Front matter that cannot be parsed or does not match the schema is logged and
kept on Item.Invalid; the item is still rendered with whatever could be read.
*/
package content

import (
	"fmt"
	"html/template"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Type is the kind of page described by the front matter.
type Type string

// Known content types.
const (
	TypeBlog Type = "blog"
	TypePage Type = "page"
)

// Metadata holds data scraped from the front matter of a Markdown file.
type Metadata struct {
	Type        Type      `yaml:"type" toml:"type"`               // blog or page
	Title       string    `yaml:"title" toml:"title"`             // Title of the page
	Date        time.Time `yaml:"date" toml:"date"`               // Publish date, zero when absent
	Description string    `yaml:"description" toml:"description"` // Used for the description meta tag
	Order       *float64  `yaml:"order" toml:"order"`             // Position among siblings in a listing
	Tags        []string  `yaml:"tags" toml:"tags"`               // Tags for the page
}

// Validate checks the metadata against the front matter schema.
func (m Metadata) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Type, validation.Required, validation.In(TypeBlog, TypePage)),
		validation.Field(&m.Title, validation.Required),
		validation.Field(&m.Description, validation.Required),
		validation.Field(&m.Order, validation.NotNil),
		validation.Field(&m.Tags, validation.NotNil),
	)
}

// OrderValue returns the order of the page, 0 when none is given.
func (m *Metadata) OrderValue() float64 {
	if m.Order == nil {
		return 0
	}
	return *m.Order
}

// Item is one addressable page derived from one source file.
type Item struct {
	FilePath    string        // Location of the source in the store's file system
	ContentPath string        // Hierarchical key, like "blog/index"
	Metadata    *Metadata     // Set by annotation
	HTMLContent template.HTML // Set by annotation
	Invalid     error         // Set by annotation when the front matter is malformed

	once sync.Once
	err  error
}

// String returns the content path of the item.
func (item *Item) String() string {
	return item.ContentPath
}

// DuplicateError is returned by Discover when two files map to the same content path.
type DuplicateError struct {
	ContentPath string
	Files       [2]string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("content path %q is used by both %q and %q", e.ContentPath, e.Files[0], e.Files[1])
}

// MetadataError reports front matter that could not be parsed or is invalid.
type MetadataError struct {
	ContentPath string
	Err         error
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("%s: invalid metadata: %s", e.ContentPath, e.Err)
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
