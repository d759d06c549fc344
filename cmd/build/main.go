// Command build renders the site into a folder of static HTML files.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/ancientlore/quire/config"
	"github.com/ancientlore/quire/markdown"
	"github.com/ancientlore/quire/publish"
	"github.com/facebookgo/flagenv"
)

func main() {
	// Setup flags
	var (
		fRoot    = flag.String("root", ".", "Root of the site.")
		fContent = flag.String("content", "", "Content folder, relative to root.")
		fOutput  = flag.String("output", "", "Output folder, relative to root.")
		fCNAME   = flag.String("cname", "", "CNAME file, relative to root.")
	)
	flag.Parse()
	flagenv.Parse()

	// Switch to site folder
	err := os.Chdir(*fRoot)
	if err != nil {
		log.Printf("Cannot switch to root %q: %s", *fRoot, err)
		os.Exit(1)
	}

	// Read configuration
	cfg, err := config.Load(os.DirFS("."), config.DefaultFile)
	if err != nil {
		log.Printf("Cannot load configuration: %s", err)
		os.Exit(2)
	}
	if *fContent != "" {
		cfg.Content = *fContent
	}
	if *fOutput != "" {
		cfg.Output = *fOutput
	}
	if *fCNAME != "" {
		cfg.CNAME = *fCNAME
	}

	start := time.Now()
	err = publish.Build(context.Background(), publish.Options{
		Source:    os.DirFS(cfg.Content),
		CNAMEFile: cfg.CNAME,
		Output:    cfg.Output,
		Converter: markdown.New(cfg.MarkdownOptions()),
	})
	if err != nil {
		log.Printf("Build failed: %s", err)
		os.Exit(3)
	}
	log.Printf("Built %q in %s", cfg.Output, time.Since(start))
}
