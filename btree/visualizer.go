package btree

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// levelColors cycles by depth so that siblings on the same level share a colour.
var levelColors = []*color.Color{
	color.New(color.FgCyan, color.Bold),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
}

// Visualizer renders a tree as an indented outline, one node per line:
//
//	B-Tree Structure:
//	Root: [10]
//	    Child 0: [5 6 7]
//	    Child 1: [12 17 20 30]
//
// Colours follow color.NoColor unless Plain is set.
type Visualizer[K cmp.Ordered] struct {
	Tree  *BTree[K]
	Plain bool
}

// Visualize returns the outline of the whole tree.
func (v *Visualizer[K]) Visualize() string {
	var sb strings.Builder
	sb.WriteString("B-Tree Structure:\n")
	v.visualizeNode(&sb, v.Tree.root, 0, "Root: ")
	return sb.String()
}

func (v *Visualizer[K]) visualizeNode(sb *strings.Builder, n *Node[K], level int, prefix string) {
	line := strings.Repeat(" ", level*4) + prefix + fmt.Sprint(n.keys)
	if !v.Plain {
		line = levelColors[level%len(levelColors)].Sprint(line)
	}
	sb.WriteString(line)
	sb.WriteByte('\n')

	for i, child := range n.children {
		v.visualizeNode(sb, child, level+1, fmt.Sprintf("Child %d: ", i))
	}
}
