package ordering

import "errors"

// Gap is the spacing between order values of consecutively appended cards.
// Repeated halving gives roughly Gap-1 insertions at any single point before
// a column must be renumbered.
const Gap = 100

// ErrNeedsRebalance signals that no integer gap remains between the requested
// neighbors. It is internal to the package: PlanMove absorbs it by renumbering
// the destination column and callers never observe it.
var ErrNeedsRebalance = errors.New("ordering: no gap between neighbors, rebalance required")

// AppendOrder returns the order value for a card appended after the current
// maximum order of a column. Pass 0 for an empty column. Never fails.
func AppendOrder(maxOrder int) int {
	return maxOrder + Gap
}

// InsertBetween returns the order value for a card placed between two
// neighbors. A nil lower means insertion at the head of the column; a nil
// upper means insertion at the tail. Returns ErrNeedsRebalance when the
// neighbors are too close for an integer between them.
func InsertBetween(lower, upper *int) (int, error) {
	switch {
	case lower == nil && upper == nil:
		return Gap, nil
	case lower == nil:
		mid := *upper / 2
		if mid == 0 || mid == *upper {
			return 0, ErrNeedsRebalance
		}
		return mid, nil
	case upper == nil:
		return *lower + Gap, nil
	default:
		mid := (*lower + *upper) / 2
		if mid == *lower {
			return 0, ErrNeedsRebalance
		}
		return mid, nil
	}
}

// Rebalance assigns fresh order values Gap, 2*Gap, 3*Gap, ... to the given
// card IDs in their current sequence order. Used when InsertBetween reports
// an exhausted gap; after a rebalance every adjacent pair is Gap apart again.
func Rebalance(idsInOrder []string) map[string]int {
	orders := make(map[string]int, len(idsInOrder))
	for i, id := range idsInOrder {
		orders[id] = (i + 1) * Gap
	}
	return orders
}
