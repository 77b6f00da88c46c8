package content

import (
	"github.com/npillmayer/cords"

	"github.com/npillmayer/textarea/core"
)

// A sequence of text nodes, flowing into the same container, is held in a
// cord. Every leaf of the cord refers to one text node.
//
// Cords do not hold leaves without content. A node with empty text is laid
// out as a single space, and its leaf represents it as such.

// NewSequence creates a cord from text nodes. Nodes are kept in order;
// null nodes are skipped. Calling NewSequence without nodes is an error with
// code core.EINVALID.
func NewSequence(nodes ...*TextContent) (cords.Cord, error) {
	if len(nodes) == 0 {
		return cords.Cord{}, core.ErrorWithCode(cords.ErrIllegalArguments, core.EINVALID)
	}
	b := cords.NewBuilder()
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := b.Append(&nodeLeaf{node: n}); err != nil {
			return cords.Cord{}, core.ErrorWithCode(err, core.EINTERNAL)
		}
	}
	return b.Cord(), nil
}

// EachNode calls f for every text node of a sequence, in order. Iteration
// stops at the first error returned by f.
func EachNode(seq cords.Cord, f func(*TextContent) error) error {
	return seq.EachLeaf(func(l cords.Leaf, pos uint64) error {
		if nl, ok := l.(*nodeLeaf); ok {
			return f(nl.node)
		}
		return nil
	})
}

// nodeLeaf is the leaf type of text node sequences.
type nodeLeaf struct {
	node *TextContent
}

// text is the fragment a leaf stands for.
func (l nodeLeaf) text() string {
	if l.node.text == "" {
		return " "
	}
	return l.node.text
}

// Weight of a leaf is its string length in bytes, at least 1.
func (l nodeLeaf) Weight() uint64 {
	return uint64(len(l.text()))
}

func (l nodeLeaf) String() string {
	return l.text()
}

// Split splits a leaf at position i, resulting in 2 new leafs. Both refer to
// new text nodes with the style of the original node.
func (l nodeLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	s := l.text()
	left := *l.node
	left.text = s[:i]
	right := *l.node
	right.text = s[i:]
	return &nodeLeaf{node: &left}, &nodeLeaf{node: &right}
}

// Substring returns a string segment of the leaf's text.
func (l nodeLeaf) Substring(i, j uint64) []byte {
	return []byte(l.text())[i:j]
}

var _ cords.Leaf = nodeLeaf{}
