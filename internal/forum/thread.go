package forum

import (
	"context"
	"fmt"
)

// ThreadNode is one reply in a prefetched thread together with its answers.
type ThreadNode struct {
	Reply    Reply
	Children []*ThreadNode
}

// Thread loads every reply to a question in one statement and assembles
// the reply tree in memory. Roots and children are in id order.
//
// A reply whose parent is not among the question's replies (missing, or
// attached to another question) yields ErrIntegrity.
func (s *Store) Thread(ctx context.Context, questionID int64) ([]*ThreadNode, error) {
	replies, err := s.FindRepliesByQuestionID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	return buildThread(questionID, replies)
}

// buildThread links replies into a forest. replies must be in id order.
func buildThread(questionID int64, replies []Reply) ([]*ThreadNode, error) {
	nodes := make(map[int64]*ThreadNode, len(replies))
	for _, r := range replies {
		nodes[r.ID] = &ThreadNode{Reply: r}
	}

	roots := make([]*ThreadNode, 0)
	for _, r := range replies {
		node := nodes[r.ID]
		if r.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*r.ParentID]
		if !ok {
			return nil, fmt.Errorf("%w: reply %d of question %d has parent %d outside the thread",
				ErrIntegrity, r.ID, questionID, *r.ParentID)
		}
		if *r.ParentID == r.ID {
			return nil, fmt.Errorf("%w: reply %d is its own parent", ErrIntegrity, r.ID)
		}
		parent.Children = append(parent.Children, node)
	}

	// Every node must be reachable from a root; a parent cycle leaves nodes orphaned.
	seen := 0
	var walk func([]*ThreadNode)
	walk = func(level []*ThreadNode) {
		for _, n := range level {
			seen++
			walk(n.Children)
		}
	}
	walk(roots)
	if seen != len(replies) {
		return nil, fmt.Errorf("%w: replies of question %d form a parent cycle", ErrIntegrity, questionID)
	}
	return roots, nil
}

// Size returns the number of replies in the subtree rooted at n, n included.
func (n *ThreadNode) Size() int {
	total := 1
	for _, c := range n.Children {
		total += c.Size()
	}
	return total
}
