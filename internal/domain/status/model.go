package status

// Status is one node of the patient-status taxonomy. Order is a display rank
// only; it does not encode depth. ParentID references another status or is
// nil for roots.
type Status struct {
	ID       string  `db:"id" json:"id"`
	Name     string  `db:"name" json:"name"`
	ParentID *string `db:"parent_id" json:"parent_id"`
	Order    int     `db:"order" json:"order"`
}

// TreeNode is a Status with its resolved children.
type TreeNode struct {
	Status
	Children []*TreeNode `json:"children"`
}
