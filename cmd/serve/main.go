// Command serve runs a development web server that renders the site from its
// Markdown sources on every request.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/ancientlore/quire/config"
	"github.com/ancientlore/quire/content"
	"github.com/ancientlore/quire/markdown"
	"github.com/ancientlore/quire/render"
	"github.com/ancientlore/quire/web"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
)

func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 3000, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the site.")
		fContent           = flag.String("content", "", "Content folder, relative to root.")
		fCacheSize         = flag.Int64("cachesize", 0, "Size of the content cache in bytes, 0 disables it.")
		fCacheDuration     config.Duration
	)
	flag.Var(&fCacheDuration, "cacheduration", "Expiry of cached content.")
	flag.Parse()
	flagenv.Parse()

	// Switch to site folder
	err := os.Chdir(*fRoot)
	if err != nil {
		log.Printf("Cannot switch to root %q: %s", *fRoot, err)
		os.Exit(1)
	}
	log.Printf("Changed to %q directory", *fRoot)

	// Read configuration
	cfg, err := config.Load(os.DirFS("."), config.DefaultFile)
	if err != nil {
		log.Printf("Cannot load configuration: %s", err)
		os.Exit(2)
	}
	if *fContent != "" {
		cfg.Content = *fContent
	}
	if *fCacheSize != 0 {
		cfg.CacheSize = *fCacheSize
	}
	if fCacheDuration != 0 {
		cfg.CacheDuration = fCacheDuration
	}

	// Setup content file system, cached if requested
	var contentFS fs.FS = os.DirFS(cfg.Content)
	if cfg.CacheSize > 0 {
		groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
		contentFS = cachefs.New(contentFS, &cachefs.Config{GroupName: "content", SizeInBytes: cfg.CacheSize, Duration: time.Duration(cfg.CacheDuration)})
		log.Printf("Caching content: %d bytes for %s", cfg.CacheSize, cfg.CacheDuration)
	}
	conv := markdown.New(cfg.MarkdownOptions())
	discover := func() (*content.Store, error) {
		return content.Discover(contentFS, conv)
	}

	// Setup handlers
	r, err := render.New(fmt.Sprintf("http://localhost:%d", *fPort))
	if err != nil {
		log.Printf("Cannot parse templates: %s", err)
		os.Exit(3)
	}
	handler := web.HeaderHandler(
		web.NoCacheHandler(
			gziphandler.GzipHandler(
				web.Handler(discover, r),
			),
		),
		cfg.Headers)
	log.Print("Created handlers")

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           handler,
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Printf("Listening on http://localhost:%d", *fPort)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}
