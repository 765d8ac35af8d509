package status

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

func strPtr(s string) *string { return &s }

// seedRows mirrors the seeded taxonomy: Scheduled -> {Checked-In, No-Show},
// Checked-In -> {In Consultation, Cancelled}. Pre-sorted by (order, name).
func seedRows() []Status {
	return []Status{
		{ID: "sch", Name: "Scheduled", ParentID: nil, Order: 1},
		{ID: "chk", Name: "Checked-In", ParentID: strPtr("sch"), Order: 2},
		{ID: "nos", Name: "No-Show", ParentID: strPtr("sch"), Order: 2},
		{ID: "cnl", Name: "Cancelled", ParentID: strPtr("chk"), Order: 3},
		{ID: "cns", Name: "In Consultation", ParentID: strPtr("chk"), Order: 3},
	}
}

func countNodes(nodes []*TreeNode) int {
	n := 0
	for _, node := range nodes {
		n += 1 + countNodes(node.Children)
	}
	return n
}

func TestBuildTree_Hierarchy(t *testing.T) {
	tree := BuildTree(seedRows())

	if len(tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(tree))
	}
	root := tree[0]
	if root.ID != "sch" {
		t.Fatalf("expected Scheduled at the top, got %s", root.Name)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children of Scheduled, got %d", len(root.Children))
	}
	// Children keep input order: Checked-In before No-Show (same order, name asc)
	if root.Children[0].ID != "chk" || root.Children[1].ID != "nos" {
		t.Errorf("children out of order: %s, %s", root.Children[0].ID, root.Children[1].ID)
	}
	checkedIn := root.Children[0]
	if len(checkedIn.Children) != 2 {
		t.Fatalf("expected 2 children of Checked-In, got %d", len(checkedIn.Children))
	}
	// Cancelled sorts before In Consultation at equal order
	if checkedIn.Children[0].ID != "cnl" || checkedIn.Children[1].ID != "cns" {
		t.Errorf("grandchildren out of order: %s, %s", checkedIn.Children[0].ID, checkedIn.Children[1].ID)
	}
}

func TestBuildTree_MultipleRoots(t *testing.T) {
	rows := []Status{
		{ID: "a", Name: "Alpha", Order: 1},
		{ID: "b", Name: "Beta", Order: 1},
		{ID: "c", Name: "Gamma", ParentID: strPtr("a"), Order: 2},
	}
	tree := BuildTree(rows)
	if len(tree) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(tree))
	}
	if tree[0].ID != "a" || tree[1].ID != "b" {
		t.Errorf("roots out of order: %s, %s", tree[0].ID, tree[1].ID)
	}
}

func TestBuildTree_CountPreserved(t *testing.T) {
	rows := seedRows()
	tree := BuildTree(rows)
	if got := countNodes(tree); got != len(rows) {
		t.Errorf("expected %d nodes in forest, got %d", len(rows), got)
	}
}

func TestBuildTree_DanglingParentBecomesRoot(t *testing.T) {
	rows := []Status{
		{ID: "a", Name: "Alpha", Order: 1},
		{ID: "b", Name: "Beta", ParentID: strPtr("missing"), Order: 2},
	}
	tree := BuildTree(rows)
	if len(tree) != 2 {
		t.Fatalf("expected dangling node promoted to root, got %d roots", len(tree))
	}
	if tree[1].ID != "b" {
		t.Errorf("expected b as second root, got %s", tree[1].ID)
	}
	// The stored parent_id is preserved on the node even though it dangles
	if tree[1].ParentID == nil || *tree[1].ParentID != "missing" {
		t.Error("expected dangling parent_id to be preserved")
	}
}

func TestBuildTree_RemovingRootRemovesSubtree(t *testing.T) {
	rows := seedRows()
	tree := BuildTree(rows)
	topLevel := len(tree)

	// Drop the Scheduled root: its children dangle and surface as roots,
	// but the original root's subtree is no longer under the top level as
	// one unit.
	var withoutRoot []Status
	for _, row := range rows {
		if row.ID != "sch" {
			withoutRoot = append(withoutRoot, row)
		}
	}
	pruned := BuildTree(withoutRoot)
	if countNodes(pruned) != len(rows)-1 {
		t.Errorf("expected %d nodes after removing root, got %d", len(rows)-1, countNodes(pruned))
	}
	for _, root := range pruned {
		if root.ID == "sch" {
			t.Error("removed root still present")
		}
	}
	if topLevel != 1 {
		t.Fatalf("precondition: expected single root, got %d", topLevel)
	}
}

func TestBuildTree_Empty(t *testing.T) {
	tree := BuildTree(nil)
	if len(tree) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(tree))
	}
}

func TestBuildTree_Idempotent(t *testing.T) {
	rows := seedRows()
	first := BuildTree(rows)
	second := BuildTree(rows)
	if !reflect.DeepEqual(first, second) {
		t.Error("expected structurally identical output for identical input")
	}
}

func TestBuildTree_RandomizedForest(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40) + 1
		rows := make([]Status, n)
		for i := 0; i < n; i++ {
			rows[i] = Status{ID: fmt.Sprintf("s%d", i), Name: fmt.Sprintf("Status %d", i), Order: i}
			switch pick := rng.Intn(3); {
			case pick == 1 && i > 0:
				// parent among earlier rows: acyclic by construction
				rows[i].ParentID = strPtr(fmt.Sprintf("s%d", rng.Intn(i)))
			case pick == 2:
				// dangling reference
				rows[i].ParentID = strPtr("absent")
			}
		}

		tree := BuildTree(rows)
		if got := countNodes(tree); got != n {
			t.Fatalf("trial %d: expected %d nodes, got %d", trial, n, got)
		}
		for _, root := range tree {
			if root.ParentID == nil {
				continue
			}
			if *root.ParentID != "absent" {
				t.Fatalf("trial %d: root %s has a resolvable parent %s", trial, root.ID, *root.ParentID)
			}
		}
	}
}

func TestBuildTree_CyclicDataStaysForest(t *testing.T) {
	// A malformed mutual-parent pair never surfaces at the top level, so
	// the returned forest stays acyclic and finite to walk.
	rows := []Status{
		{ID: "a", Name: "Alpha", ParentID: strPtr("b"), Order: 1},
		{ID: "b", Name: "Beta", ParentID: strPtr("a"), Order: 1},
		{ID: "c", Name: "Gamma", Order: 2},
	}
	tree := BuildTree(rows)
	if len(tree) != 1 || tree[0].ID != "c" {
		t.Fatalf("expected only the acyclic row at top level, got %d roots", len(tree))
	}
	// countNodes terminates because the cycle is unreachable from the roots
	if got := countNodes(tree); got != 1 {
		t.Errorf("expected 1 reachable node, got %d", got)
	}
}
