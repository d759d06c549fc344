// Command check reads every content file and reports invalid front matter
// and listings with repeated order values. It prints the content tree and
// exits with a non-zero status when problems are found.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ancientlore/quire/config"
	"github.com/ancientlore/quire/content"
	"github.com/ancientlore/quire/markdown"
	"github.com/ancientlore/quire/structure"
	"github.com/facebookgo/flagenv"
)

func main() {
	// Setup flags
	var (
		fRoot    = flag.String("root", ".", "Root of the site.")
		fContent = flag.String("content", "", "Content folder, relative to root.")
		fTree    = flag.Bool("tree", true, "Print the content tree.")
	)
	flag.Parse()
	flagenv.Parse()

	err := os.Chdir(*fRoot)
	if err != nil {
		log.Printf("Cannot switch to root %q: %s", *fRoot, err)
		os.Exit(1)
	}
	cfg, err := config.Load(os.DirFS("."), config.DefaultFile)
	if err != nil {
		log.Printf("Cannot load configuration: %s", err)
		os.Exit(2)
	}
	if *fContent != "" {
		cfg.Content = *fContent
	}

	store, err := content.Discover(os.DirFS(cfg.Content), markdown.New(cfg.MarkdownOptions()))
	if err != nil {
		log.Printf("Cannot discover content: %s", err)
		os.Exit(3)
	}
	err = store.AnnotateAll(context.Background(), store.Items)
	if err != nil {
		log.Printf("Cannot read content: %s", err)
		os.Exit(3)
	}

	problems := checkListings(store)
	if *fTree {
		fmt.Println(structure.Tree(cfg.Content, store.Items, label(problems)))
	}
	count := len(store.Invalid())
	for _, errs := range problems {
		count += len(errs)
	}
	if count > 0 {
		log.Printf("Found %d problems in %d items", count, len(store.Items))
		os.Exit(4)
	}
	log.Printf("Checked %d items", len(store.Items))
}

// checkListings sorts the listing of every index page, returning the
// order errors by content path.
func checkListings(store *content.Store) map[string][]error {
	problems := make(map[string][]error)
	for _, item := range store.Items {
		if !structure.IsIndex(item.ContentPath) {
			continue
		}
		err := structure.SortListing(item.ContentPath, structure.Listing(store.Items, item.ContentPath))
		var oe *structure.OrderError
		if errors.As(err, &oe) {
			log.Printf("check: %s", err)
			problems[item.ContentPath] = append(problems[item.ContentPath], err)
		}
	}
	return problems
}

// label returns a tree label function marking items with problems.
func label(problems map[string][]error) func(*content.Item) string {
	return func(item *content.Item) string {
		text := item.ContentPath
		if item.Metadata != nil && item.Metadata.Title != "" {
			text += " (" + item.Metadata.Title + ")"
		}
		if item.Invalid != nil || len(problems[item.ContentPath]) > 0 {
			text = "✗ " + text
		}
		return text
	}
}
