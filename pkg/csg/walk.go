package csg

// Walk calls fn for every node of the tree in depth-first order, parents
// before children. The walk is read-only.
func Walk(s Solid, fn func(Solid)) {
	if s == nil {
		return
	}
	fn(s)
	switch n := s.(type) {
	case Translate:
		Walk(n.Child, fn)
	case Rotate:
		Walk(n.Child, fn)
	case ClipAbove:
		Walk(n.Child, fn)
	case Boolean:
		for _, c := range n.Children {
			Walk(c, fn)
		}
	case Minkowski:
		Walk(n.A, fn)
		Walk(n.B, fn)
	}
}

// NodeCount returns the number of nodes in the tree.
func NodeCount(s Solid) int {
	n := 0
	Walk(s, func(Solid) { n++ })
	return n
}
