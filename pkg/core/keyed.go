package core

// KeyedStats counts what a keyed diff did with the previous children.
type KeyedStats struct {
	Reused    int
	Created   int
	Discarded int
}

// DiffKeyed reconciles tree's children with widgets identified by newKeys,
// given the keys the children were built with. A child whose key reappears
// keeps its subtree wherever it moved, then goes through the ordinary tag
// diff; new keys get fresh trees and vanished keys are discarded. When keys
// repeat, occurrences are matched in order.
func DiffKeyed[M any, K comparable](tree *Tree, oldKeys, newKeys []K, widgets []Widget[M]) KeyedStats {
	if len(oldKeys) != len(tree.Children) {
		// Keys out of step with the tree; fall back to positional diffing.
		old := len(tree.Children)
		DiffChildren(tree, widgets)
		return KeyedStats{
			Reused:    min(old, len(widgets)),
			Created:   max(len(widgets)-old, 0),
			Discarded: max(old-len(widgets), 0),
		}
	}

	byKey := make(map[K][]int, len(oldKeys))
	for i, k := range oldKeys {
		byKey[k] = append(byKey[k], i)
	}

	var stats KeyedStats
	children := make([]Tree, len(widgets))
	for i, w := range widgets {
		k := newKeys[i]
		if idx := byKey[k]; len(idx) > 0 {
			byKey[k] = idx[1:]
			children[i] = tree.Children[idx[0]]
			Diff(&children[i], w)
			stats.Reused++
			continue
		}
		children[i] = NewTree(w)
		stats.Created++
	}
	stats.Discarded = len(tree.Children) - stats.Reused
	tree.Children = children
	return stats
}
