package structure

import (
	"path"

	"github.com/ancientlore/quire/content"
	"github.com/disiqueira/gotree/v3"
)

// Tree renders the content paths of the items as a folder tree under
// rootLabel. The label function, if given, decorates each item.
func Tree(rootLabel string, items []*content.Item, label func(*content.Item) string) string {
	var (
		root = gotree.New(rootLabel)
		dirs = make(map[string]gotree.Tree)
	)
	var getDir func(dir string) gotree.Tree
	getDir = func(dir string) gotree.Tree {
		if dir == "." {
			return root
		}
		d := dirs[dir]
		if d == nil {
			d = getDir(path.Dir(dir)).Add(path.Base(dir) + "/")
			dirs[dir] = d
		}
		return d
	}
	for _, item := range items {
		text := path.Base(item.ContentPath)
		if label != nil {
			text = label(item)
		}
		getDir(path.Dir(item.ContentPath)).Add(text)
	}
	return root.Print()
}
