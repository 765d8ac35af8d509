package status

// BuildTree assembles a flat status list into a parent/child forest. Rows are
// expected pre-sorted by (order, name); children inherit that order. A row
// whose parent_id does not resolve within the given rows is demoted to a
// root rather than rejected.
func BuildTree(rows []Status) []*TreeNode {
	nodes := make(map[string]*TreeNode, len(rows))
	for _, row := range rows {
		nodes[row.ID] = &TreeNode{Status: row, Children: []*TreeNode{}}
	}

	roots := make([]*TreeNode, 0, len(rows))
	for _, row := range rows {
		node := nodes[row.ID]
		if row.ParentID != nil {
			if parent, ok := nodes[*row.ParentID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots
}
