package bgui

import (
	"fmt"
	"strings"

	"github.com/RangeyRover/AMS2-BGUI-Editor/pkg/types"
)

// Node is one position in the derived element hierarchy. The register alone
// defines structure; Element is the scanned record matched by id and may be
// nil when scanning found no record for the entry.
type Node struct {
	Entry    *types.RegisterEntry // nil only for the virtual root
	Element  *Element
	Children []*Node
}

// Label renders a short human identifier for the node.
func (n *Node) Label() string {
	if n.Entry == nil {
		return "(root)"
	}
	if n.Element != nil && n.Element.Name != "" {
		return fmt.Sprintf("%s [id=%d]", n.Element.Name, n.Entry.ElementID)
	}
	return fmt.Sprintf("(unscanned) [id=%d]", n.Entry.ElementID)
}

// Tree derives the element hierarchy by recursive descent over the register's
// pre-order entries. The register has no single root, so the returned virtual
// root holds the forest. A register whose child counts imply more entries than
// exist yields the forest of what is available plus one TREE diagnostic; the
// truncation is never fatal.
func (f *File) Tree() *Node {
	root := &Node{}
	cursor := 0
	truncated := false

	var build func() *Node
	build = func() *Node {
		if cursor >= len(f.Register) {
			return nil
		}
		entry := &f.Register[cursor]
		cursor++
		n := &Node{Entry: entry}
		if e, ok := f.byID[entry.ElementID]; ok {
			n.Element = e
		}
		for i := uint32(0); i < entry.ChildCount; i++ {
			child := build()
			if child == nil {
				truncated = true
				break
			}
			n.Children = append(n.Children, child)
		}
		return n
	}

	for cursor < len(f.Register) {
		root.Children = append(root.Children, build())
	}

	if truncated && !f.treeTruncatedSeen {
		f.treeTruncatedSeen = true
		f.addDiag(types.SevError, types.StructTree, f.RegisterSpan.Offset,
			"register truncated: child counts imply more entries than exist")
	}
	return root
}

// ByteRange returns the byte extent covered by the node's subtree: the
// minimal span containing every scanned record below it. The second return is
// false when no record in the subtree was scanned.
func (n *Node) ByteRange() (types.Span, bool) {
	start, end, ok := n.byteBounds(-1, -1)
	if !ok {
		return types.Span{}, false
	}
	return types.Span{Offset: start, Length: end - start}, true
}

func (n *Node) byteBounds(start, end int) (int, int, bool) {
	ok := start >= 0
	if n.Element != nil {
		s := n.Element.FileOffset
		e := n.Element.FileOffset + n.Element.ByteLen
		if !ok || s < start {
			start = s
		}
		if !ok || e > end {
			end = e
		}
		ok = true
	}
	for _, c := range n.Children {
		start, end, ok = c.byteBounds(start, end)
	}
	return start, end, ok
}

// Render writes the subtree as indented text with box-drawing connectors,
// one node per line.
func (n *Node) Render() string {
	var b strings.Builder
	b.WriteString(n.Label())
	b.WriteByte('\n')
	n.renderChildren(&b, "")
	return b.String()
}

func (n *Node) renderChildren(b *strings.Builder, prefix string) {
	for i, c := range n.Children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(n.Children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(c.Label())
		b.WriteByte('\n')
		c.renderChildren(b, childPrefix)
	}
}
