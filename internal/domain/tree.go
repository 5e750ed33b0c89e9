package domain

import "slices"

// TreeNode is a shelf positioned in the hierarchy, for tree rendering and
// navigation.
type TreeNode struct {
	Shelf     *Shelf
	ItemCount int
	Children  []*TreeNode
	Parent    *TreeNode
}

// BuildTree arranges a flat shelf list into a forest ordered by SortOrder.
// itemCounts maps shelf ID strings to owned-item counts and may be nil.
// A shelf whose parent is missing from the input is treated as a root, and a
// visited guard keeps already-corrupt cyclic data from recursing forever.
func BuildTree(shelves []*Shelf, itemCounts map[string]int) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(shelves))
	for _, s := range shelves {
		nodes[s.ID().String()] = &TreeNode{
			Shelf:     s,
			ItemCount: itemCounts[s.ID().String()],
		}
	}

	var roots []*TreeNode
	for _, s := range shelves {
		node := nodes[s.ID().String()]
		if s.ParentID().IsZero() {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[s.ParentID().String()]
		if !ok || wouldCycle(parent, node) {
			roots = append(roots, node)
			continue
		}
		node.Parent = parent
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(roots)
	for _, n := range nodes {
		sortSiblings(n.Children)
	}
	return roots
}

func wouldCycle(parent, child *TreeNode) bool {
	for cur := parent; cur != nil; cur = cur.Parent {
		if cur == child {
			return true
		}
	}
	return false
}

func sortSiblings(nodes []*TreeNode) {
	slices.SortStableFunc(nodes, func(a, b *TreeNode) int {
		return a.Shelf.SortOrder() - b.Shelf.SortOrder()
	})
}

// Flatten returns the node and all descendants in depth-first order.
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	for _, child := range n.Children {
		child.flattenRecursive(result)
	}
}

// Depth returns the node's distance from its root.
func (n *TreeNode) Depth() int {
	depth := 0
	for cur := n.Parent; cur != nil; cur = cur.Parent {
		depth++
	}
	return depth
}
