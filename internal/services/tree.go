package services

import (
	"sort"

	"pawgrove/internal/models"
)

type SortMode string

const (
	SortTop    SortMode = "top"
	SortNewest SortMode = "newest"
)

// ParseSortMode maps a query value to a sort mode, defaulting to newest.
func ParseSortMode(s string) SortMode {
	if s == string(SortTop) {
		return SortTop
	}
	return SortNewest
}

// CommentNode is the display projection of a comment: the record plus its
// position in the reply forest. Nodes are rebuilt from the flat list on
// every read and never mutated in place; all changes go back through the
// store.
type CommentNode struct {
	models.Comment
	Depth    int            `json:"depth"`
	Children []*CommentNode `json:"children"`

	// Derived for the requesting viewer, filled by Engine.decorate.
	IsHidden       bool   `json:"is_hidden"`
	IsPending      bool   `json:"is_pending"`
	UserReaction   string `json:"user_reaction,omitempty"`
	TotalReactions int    `json:"total_reactions"`
	IsPinned       bool   `json:"is_pinned"`
	IsBestAnswer   bool   `json:"is_best_answer"`

	// Filled at the HTTP edge; the engine never renders content.
	ContentHTML string `json:"content_html,omitempty"`
}

// BuildTree groups a flat comment list into a reply forest.
//
// A comment is a root when it has no parent, its parent does not resolve
// within the list, or its ancestor chain loops back to itself. The loop
// rule keeps corrupted ancestry data displayable: every member of a parent
// cycle is promoted to root instead of hanging the build.
//
// Children are always ordered oldest first regardless of mode; only root
// ordering follows mode. That keeps reply threads chronological while the
// top-level list can surface engagement.
func BuildTree(comments []models.Comment, mode SortMode) []*CommentNode {
	nodes := make(map[uint]*CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &CommentNode{Comment: comments[i]}
	}

	var roots []*CommentNode
	for i := range comments {
		n := nodes[comments[i].ID]
		if isRoot(n, nodes) {
			roots = append(roots, n)
			continue
		}
		parent := nodes[*n.ParentID]
		parent.Children = append(parent.Children, n)
	}

	for _, n := range nodes {
		sortChildren(n.Children)
	}
	for _, r := range roots {
		setDepth(r, 0)
	}
	sortRoots(roots, mode)
	return roots
}

// isRoot walks the ancestor chain. It terminates on a nil or unresolved
// parent, or on the first repeated node; the comment is a root only when
// the repeat is the comment itself (it sits inside a cycle).
func isRoot(n *CommentNode, nodes map[uint]*CommentNode) bool {
	if n.ParentID == nil {
		return true
	}
	if _, ok := nodes[*n.ParentID]; !ok {
		return true
	}
	seen := map[uint]bool{n.ID: true}
	pid := n.ParentID
	for pid != nil {
		p, ok := nodes[*pid]
		if !ok {
			return false
		}
		if seen[p.ID] {
			return p.ID == n.ID
		}
		seen[p.ID] = true
		pid = p.ParentID
	}
	return false
}

func setDepth(n *CommentNode, depth int) {
	n.Depth = depth
	for _, child := range n.Children {
		setDepth(child, depth+1)
	}
}

func sortChildren(children []*CommentNode) {
	sort.SliceStable(children, func(i, j int) bool {
		if !children[i].CreatedAt.Equal(children[j].CreatedAt) {
			return children[i].CreatedAt.Before(children[j].CreatedAt)
		}
		return children[i].ID < children[j].ID
	})
}

func sortRoots(roots []*CommentNode, mode SortMode) {
	switch mode {
	case SortTop:
		sort.SliceStable(roots, func(i, j int) bool {
			ri, rj := roots[i].Reactions.Total(), roots[j].Reactions.Total()
			if ri != rj {
				return ri > rj
			}
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		})
	default:
		sort.SliceStable(roots, func(i, j int) bool {
			return roots[i].CreatedAt.After(roots[j].CreatedAt)
		})
	}
}

// FindNode locates a comment in the forest by id.
func FindNode(roots []*CommentNode, id uint) *CommentNode {
	for _, r := range roots {
		if r.ID == id {
			return r
		}
		if n := FindNode(r.Children, id); n != nil {
			return n
		}
	}
	return nil
}

// Walk visits every node in the forest.
func Walk(roots []*CommentNode, fn func(*CommentNode)) {
	for _, r := range roots {
		fn(r)
		Walk(r.Children, fn)
	}
}

// SubtreeIDs collects id and every descendant of id from the flat list.
// Used by the cascading delete; a seen set guards against cyclic parent
// data here as well.
func SubtreeIDs(comments []models.Comment, id uint) []uint {
	children := make(map[uint][]uint, len(comments))
	for _, c := range comments {
		if c.ParentID != nil {
			children[*c.ParentID] = append(children[*c.ParentID], c.ID)
		}
	}

	seen := map[uint]bool{id: true}
	ids := []uint{id}
	queue := []uint{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			if seen[child] {
				continue
			}
			seen[child] = true
			ids = append(ids, child)
			queue = append(queue, child)
		}
	}
	return ids
}
