/*
Package publish builds the static site into an output folder.

A build reads the CNAME file, which holds the site's domain, and uses
"https://" plus that domain as the base URL of every link. The output folder
is emptied and receives:

	.nojekyll           empty marker so GitHub Pages serves files as-is
	CNAME               copy of the CNAME file
	sitemap.xml         sitemap of every page outside the "raw" folder
	<contentPath>.html  one page per content item

Missing source files or a missing CNAME file abort the build. Invalid front
matter only affects the page it is in.
*/
package publish

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ancientlore/quire/content"
	"github.com/ancientlore/quire/markdown"
	"github.com/ancientlore/quire/render"
	"golang.org/x/sync/errgroup"
)

// Options holds the inputs of a build.
type Options struct {
	Source    fs.FS               // Content folder
	CNAMEFile string              // Path of the CNAME file
	Output    string              // Output folder, replaced by the build
	Converter *markdown.Converter // Markdown converter for the content
}

// ReadCNAME reads the domain in the CNAME file and returns the site's base URL.
func ReadCNAME(name string) (string, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("ReadCNAME: %w", err)
	}
	return "https://" + strings.TrimSpace(string(b)), nil
}

// Build builds the site described by opts.
func Build(ctx context.Context, opts Options) error {
	baseURL, err := ReadCNAME(opts.CNAMEFile)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	err = prepareOutput(opts.Output, opts.CNAMEFile)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	store, err := content.Discover(opts.Source, opts.Converter)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	log.Printf("Found %d content items", len(store.Items))
	err = store.AnnotateAll(ctx, store.Items)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	r, err := render.New(baseURL)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, item := range store.Items {
		g.Go(func() error {
			b, err := r.Page(ctx, store, item)
			if err != nil {
				return fmt.Errorf("%s: %w", item.ContentPath, err)
			}
			return writeFile(opts.Output, item.ContentPath+".html", b)
		})
	}
	err = g.Wait()
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	var sitemap bytes.Buffer
	err = render.Sitemap(&sitemap, baseURL, store.Items)
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	err = writeFile(opts.Output, "sitemap.xml", sitemap.Bytes())
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}
	return nil
}

// prepareOutput empties the output folder and writes the .nojekyll and CNAME files.
func prepareOutput(output, cnameFile string) error {
	cname, err := os.ReadFile(cnameFile)
	if err != nil {
		return fmt.Errorf("prepareOutput: %w", err)
	}
	err = os.RemoveAll(output)
	if err != nil {
		return fmt.Errorf("prepareOutput: %w", err)
	}
	err = os.MkdirAll(output, 0o755)
	if err != nil {
		return fmt.Errorf("prepareOutput: %w", err)
	}
	err = writeFile(output, ".nojekyll", nil)
	if err != nil {
		return fmt.Errorf("prepareOutput: %w", err)
	}
	return writeFile(output, "CNAME", cname)
}

// writeFile writes data to the slash separated name under output,
// creating parent folders.
func writeFile(output, name string, data []byte) error {
	fn := filepath.Join(output, filepath.FromSlash(name))
	err := os.MkdirAll(filepath.Dir(fn), 0o755)
	if err != nil {
		return fmt.Errorf("writeFile: %w", err)
	}
	err = os.WriteFile(fn, data, 0o644)
	if err != nil {
		return fmt.Errorf("writeFile: %w", err)
	}
	return nil
}
