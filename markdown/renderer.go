package markdown

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/russross/blackfriday/v2"
)

// htmlRenderer wraps the blackfriday HTML renderer to customize
// headings, paragraphs and code blocks.
type htmlRenderer struct {
	*blackfriday.HTMLRenderer

	conv *Converter
}

// RenderNode implements blackfriday.Renderer.
func (r *htmlRenderer) RenderNode(w io.Writer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.Heading:
		if !entering && r.conv.opts.HeadingAnchors && node.Level > 1 && node.HeadingID != "" {
			fmt.Fprintf(w, `<a name="%[1]s" class="anchor" href="#%[1]s">#</a>`, node.HeadingID)
		}
	case blackfriday.Paragraph:
		if unwrapParagraph(node) {
			if !entering {
				io.WriteString(w, "<br>\n")
			}
			return blackfriday.GoToNext
		}
	case blackfriday.CodeBlock:
		var buf bytes.Buffer
		err := r.highlight(&buf, codeLanguage(node.Info), node.Literal)
		if err == nil {
			w.Write(buf.Bytes())
			return blackfriday.GoToNext
		}
		log.Printf("highlight: %s", err)
	}
	return r.HTMLRenderer.RenderNode(w, node, entering)
}

// highlight writes the code as highlighted HTML.
func (r *htmlRenderer) highlight(w io.Writer, lang string, code []byte) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := chroma.Coalesce(lexer).Tokenise(nil, string(code))
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	err = r.conv.formatter.Format(w, r.conv.style, it)
	if err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

// codeLanguage returns the language named in a fence info string.
func codeLanguage(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return "plaintext"
	}
	return fields[0]
}

// unwrapParagraph reports whether a top-level paragraph holds only an image
// or only emphasized text.
func unwrapParagraph(node *blackfriday.Node) bool {
	if node.Parent == nil || node.Parent.Type != blackfriday.Document {
		return false
	}
	first, last := trimEmpty(node.FirstChild, node.LastChild)
	if first == nil {
		return false
	}
	if first.Type == blackfriday.Image {
		return true
	}
	return first.Type == blackfriday.Emph && last.Type == blackfriday.Emph
}

// trimEmpty skips the empty text nodes the parser leaves around inline
// content, returning nil when nothing else is left.
func trimEmpty(first, last *blackfriday.Node) (*blackfriday.Node, *blackfriday.Node) {
	for first != nil && isEmptyText(first) {
		if first == last {
			return nil, nil
		}
		first = first.Next
	}
	for last != nil && last != first && isEmptyText(last) {
		last = last.Prev
	}
	return first, last
}

func isEmptyText(node *blackfriday.Node) bool {
	return node.Type == blackfriday.Text && len(node.Literal) == 0
}
