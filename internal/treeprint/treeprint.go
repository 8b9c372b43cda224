// Package treeprint renders a set of slash-separated relative paths as a
// box-drawing tree, the way a restored source tree is shown after an
// unflatten run. It works on paths alone and never touches the
// filesystem.
package treeprint

import (
	"sort"
	"strings"
)

type node struct {
	name     string
	children map[string]*node
}

func (n *node) isDir() bool {
	return len(n.children) > 0
}

// Render draws the tree for paths. Directories sort before files and
// both sort alphabetically within a level. The result carries no
// trailing newline; an empty path set renders as an empty string.
func Render(paths []string) string {
	root := &node{children: map[string]*node{}}
	for _, p := range paths {
		cur := root
		for _, part := range strings.Split(p, "/") {
			if part == "" {
				continue
			}
			child, ok := cur.children[part]
			if !ok {
				child = &node{name: part, children: map[string]*node{}}
				cur.children[part] = child
			}
			cur = child
		}
	}

	var b strings.Builder
	writeChildren(&b, root, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func writeChildren(b *strings.Builder, n *node, prefix string) {
	kids := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		kids = append(kids, c)
	}
	sort.Slice(kids, func(i, j int) bool {
		if kids[i].isDir() != kids[j].isDir() {
			return kids[i].isDir()
		}
		return kids[i].name < kids[j].name
	})

	for i, c := range kids {
		connector, extension := "├── ", "│   "
		if i == len(kids)-1 {
			connector, extension = "└── ", "    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(c.name)
		if c.isDir() {
			b.WriteString("/")
		}
		b.WriteByte('\n')
		if c.isDir() {
			writeChildren(b, c, prefix+extension)
		}
	}
}
