package markdown

import (
	"strings"
	"testing"

	"github.com/russross/blackfriday/v2"
)

func TestConvert(t *testing.T) {
	var tests = []struct {
		name    string
		src     string
		want    []string
		notWant []string
	}{
		{
			name: "paragraph",
			src:  "hello there",
			want: []string{"<p>hello there</p>"},
		},
		{
			name:    "title heading",
			src:     "# My Title",
			want:    []string{`<h1 id="my-title">`},
			notWant: []string{`class="anchor"`},
		},
		{
			name: "sub heading",
			src:  "## Getting Started",
			want: []string{`<h2 id="getting-started">`, `<a name="getting-started" class="anchor" href="#getting-started">#</a>`},
		},
		{
			name:    "image",
			src:     "![a logo](logo.png)",
			want:    []string{"<img", "<br>"},
			notWant: []string{"<p>"},
		},
		{
			name:    "emphasis",
			src:     "*a caption*",
			want:    []string{"<em>a caption</em><br>"},
			notWant: []string{"<p>"},
		},
		{
			name:    "code",
			src:     "```go\nfunc main() {}\n```\n",
			want:    []string{"<pre", "main", `style="`},
			notWant: []string{`class="language-go"`},
		},
		{
			name: "unknown language",
			src:  "```nosuchlanguage\nplain words\n```\n",
			want: []string{"<pre", "plain words"},
		},
	}
	c := New(DefaultOptions())
	for _, test := range tests {
		out := string(c.Convert([]byte(test.src)))
		for _, w := range test.want {
			if !strings.Contains(out, w) {
				t.Errorf("%s: expected %q in %q", test.name, w, out)
			}
		}
		for _, w := range test.notWant {
			if strings.Contains(out, w) {
				t.Errorf("%s: did not expect %q in %q", test.name, w, out)
			}
		}
	}
}

func TestConvertWithoutAnchors(t *testing.T) {
	opts := DefaultOptions()
	opts.HeadingAnchors = false
	out := string(New(opts).Convert([]byte("## Section")))
	if strings.Contains(out, `class="anchor"`) {
		t.Errorf("Expected no anchor in %q", out)
	}
	if !strings.Contains(out, `id="section"`) {
		t.Errorf("Expected heading id in %q", out)
	}
}

func TestConvertListParagraphs(t *testing.T) {
	out := string(New(DefaultOptions()).Convert([]byte("- *one*\n- two\n")))
	if strings.Contains(out, "<br>") {
		t.Errorf("List items should not be unwrapped: %q", out)
	}
}

func TestCodeLanguage(t *testing.T) {
	var tests = []struct {
		info string
		want string
	}{
		{"", "plaintext"},
		{"go", "go"},
		{"js title=x", "js"},
	}
	for _, test := range tests {
		if got := codeLanguage([]byte(test.info)); got != test.want {
			t.Errorf("codeLanguage(%q) = %q, expected %q", test.info, got, test.want)
		}
	}
}

func TestUnwrapParagraph(t *testing.T) {
	var tests = []struct {
		src  string
		want bool
	}{
		{"![a logo](logo.png)", true},
		{"*a caption*", true},
		{"_a caption_ here _and there_", true},
		{"*a caption* and more", false},
		{"some *emphasis*", false},
		{"plain words", false},
		{"> *quoted*", false},
	}
	for _, test := range tests {
		doc := blackfriday.New(blackfriday.WithExtensions(DefaultOptions().Extensions)).Parse([]byte(test.src))
		var got, found bool
		doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
			if entering && node.Type == blackfriday.Paragraph && !found {
				found = true
				got = unwrapParagraph(node)
			}
			return blackfriday.GoToNext
		})
		if !found {
			t.Errorf("%q: no paragraph", test.src)
			continue
		}
		if got != test.want {
			t.Errorf("unwrapParagraph(%q) = %v, expected %v", test.src, got, test.want)
		}
	}
}

func TestConvertMixedParagraph(t *testing.T) {
	out := string(New(DefaultOptions()).Convert([]byte("*a caption* and more")))
	if !strings.Contains(out, "<p>") || strings.Contains(out, "<br>") {
		t.Errorf("Mixed paragraph should stay wrapped: %q", out)
	}
}
