package content

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/ancientlore/quire/markdown"
)

// homeFile is an alternative name for a folder's index page.
const homeFile = "_home.md"

var markdownExtensions = []string{".md", ".markdown"}

// Discover walks fsys and returns a Store holding one item per Markdown file.
// Items only have FilePath and ContentPath set; conv is used when they are
// annotated.
func Discover(fsys fs.FS, conv *markdown.Converter) (*Store, error) {
	var (
		items []*Item
		seen  = make(map[string]string)
	)
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if name != "." && containsSpecialFile(name) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		contentPath, ok := toContentPath(name)
		if !ok {
			return nil
		}
		if prev, found := seen[contentPath]; found {
			return &DuplicateError{ContentPath: contentPath, Files: [2]string{prev, name}}
		}
		seen[contentPath] = name
		items = append(items, &Item{FilePath: name, ContentPath: contentPath})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	return &Store{Items: items, fsys: fsys, conv: conv}, nil
}

// toContentPath converts a file name into a content path, returning
// false for files that are not Markdown.
func toContentPath(name string) (string, bool) {
	ext := path.Ext(name)
	if !isMarkdownExtension(ext) {
		return "", false
	}
	dir, file := path.Split(name)
	if file == homeFile {
		return path.Join(dir, "index"), true
	}
	return path.Join(dir, strings.TrimSuffix(file, ext)), true
}

func isMarkdownExtension(ext string) bool {
	for _, e := range markdownExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
