// Package preview renders a generated project as a directory tree and
// prints individual files for inspection before export.
package preview

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/secforge/secforge/pkg/models"
)

// Node is a directory or file in the preview tree.
type Node struct {
	Name     string
	File     *models.File // nil for directories
	Children []*Node
}

// IsDir reports whether n is a directory.
func (n *Node) IsDir() bool { return n.File == nil }

// BuildTree arranges files into a tree by splitting paths on "/". When a
// path appears more than once the last file wins. Within each directory,
// subdirectories come first, then files, each in lexical order.
func BuildTree(files []models.File) *Node {
	root := &Node{}
	for i := range files {
		f := files[i]
		parts := strings.Split(f.Path, "/")
		dir := root
		for _, part := range parts[:len(parts)-1] {
			dir = dir.child(part, true)
		}
		leaf := dir.child(parts[len(parts)-1], false)
		leaf.File = &f
	}
	root.sort()
	return root
}

// child returns the named child of n, creating it when missing.
func (n *Node) child(name string, dir bool) *Node {
	for _, c := range n.Children {
		if c.Name == name && c.IsDir() == dir {
			return c
		}
	}
	c := &Node{Name: name}
	if !dir {
		c.File = &models.File{}
	}
	n.Children = append(n.Children, c)
	return c
}

func (n *Node) sort() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		return a.Name < b.Name
	})
	for _, c := range n.Children {
		c.sort()
	}
}

// Render writes root as an ASCII tree, one entry per line. Directories end with "/".
func Render(w io.Writer, title string, root *Node) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	return renderChildren(w, root, "")
}

func renderChildren(w io.Writer, n *Node, prefix string) error {
	for i, c := range n.Children {
		last := i == len(n.Children)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}

		name := c.Name
		if c.IsDir() {
			name += "/"
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, name); err != nil {
			return err
		}
		if c.IsDir() {
			if err := renderChildren(w, c, prefix+indent); err != nil {
				return err
			}
		}
	}
	return nil
}
