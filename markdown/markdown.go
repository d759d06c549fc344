/*
Package markdown converts Markdown documents into HTML fragments.

A Converter is configured once through Options and is then safe to share
between goroutines. It adds a few things on top of a plain Markdown render:

	Headings     h2 and deeper get an id and a trailing "#" anchor link,
	             h1 is reserved for page titles and only gets the id
	Paragraphs   a paragraph that is only an image, or only emphasized text,
	             is emitted without <p> and followed by <br>
	Code         fenced code blocks are highlighted with inline styles;
	             unknown languages are rendered as plain text
*/
package markdown

import (
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/russross/blackfriday/v2"
)

// Options holds the settings used to build a Converter.
type Options struct {
	HeadingAnchors bool                   // Add "#" anchor links to h2 and deeper
	Style          string                 // Name of the highlighting style
	Extensions     blackfriday.Extensions // Markdown parser extensions
}

// DefaultOptions returns the options used by the quire tools.
func DefaultOptions() Options {
	return Options{
		HeadingAnchors: true,
		Style:          "github",
		Extensions:     blackfriday.CommonExtensions | blackfriday.AutoHeadingIDs | blackfriday.Footnotes,
	}
}

// Converter renders Markdown into HTML.
type Converter struct {
	opts      Options
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New returns a Converter for the given options.
func New(opts Options) *Converter {
	return &Converter{
		opts:      opts,
		style:     styles.Get(opts.Style),
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}
}

// Convert renders the Markdown source into an HTML fragment.
func (c *Converter) Convert(src []byte) []byte {
	r := &htmlRenderer{
		HTMLRenderer: blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.CommonHTMLFlags,
		}),
		conv: c,
	}
	return blackfriday.Run(src, blackfriday.WithExtensions(c.opts.Extensions), blackfriday.WithRenderer(r))
}
