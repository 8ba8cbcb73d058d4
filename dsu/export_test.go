package dsu

// Parents exposes the parent links to the external test package.
func (f *Forest) Parents() []int {
	out := make([]int, len(f.nodes))
	for i, nd := range f.nodes {
		out[i] = nd.parent
	}
	return out
}
