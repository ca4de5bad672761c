package ordering

import (
	"fmt"

	"huntboard/internal/domain"
	"huntboard/internal/domain/board"
)

// CardPosition is the slice element consumed by the planner: a card ID with
// its current order value. Callers supply column membership sorted ascending
// by order, the way the storage layer returns it.
type CardPosition struct {
	ID    string
	Order int
}

// Write is a single persisted field change: the card identified by CardID is
// assigned to ColumnID with the given order value.
type Write struct {
	CardID   string
	ColumnID string
	Order    int
}

// WriteSet is the batch of writes produced by one move or insert operation.
// The storage layer must apply it atomically: either every write lands or
// none do, from the perspective of any reader. Within a write-set all order
// values targeting the same column are distinct.
type WriteSet []Write

// PlanMove translates a move intent plus the current membership of the source
// and destination columns into the minimal write-set that realizes the move.
//
// source and dest are the columns' cards sorted ascending by order. For a
// move within a single column, pass the same sequence for both. The intent's
// DestIndex addresses the destination sequence with the moved card
// conceptually removed, which is also its position in the post-move sequence;
// indexes past the end are clamped to an append.
//
// A move that leaves the card at its current position returns an empty
// write-set so callers can skip the storage round trip entirely. When the
// target slot has no integer gap left, the whole destination column is
// renumbered and the write-set covers every card in it.
//
// Returns domain.ErrInvalidMove if the card is not a member of the claimed
// source column. Destination-column existence is the caller's concern: the
// planner only ever sees membership sequences.
func PlanMove(intent board.MoveIntent, source, dest []CardPosition) (WriteSet, error) {
	srcIdx := indexOf(source, intent.CardID)
	if srcIdx < 0 {
		return nil, fmt.Errorf("card %q not in column %q: %w",
			intent.CardID, intent.SourceColumn, domain.ErrInvalidMove)
	}

	// Resolve neighbors against the destination with the moved card removed.
	// For a same-column move this shifts positions after the card down by
	// one, so the index needs no further correction.
	working := withoutCard(dest, intent.CardID)

	idx := intent.DestIndex
	if idx < 0 {
		idx = 0
	}
	if idx > len(working) {
		idx = len(working)
	}

	if intent.SourceColumn == intent.DestColumn && idx == srcIdx {
		return WriteSet{}, nil
	}

	var lower, upper *int
	if idx > 0 {
		lower = &working[idx-1].Order
	}
	if idx < len(working) {
		upper = &working[idx].Order
	}

	order, err := InsertBetween(lower, upper)
	if err != nil {
		// Gap exhausted: renumber the full destination sequence with the
		// moved card in place. Absorbed here, never surfaced.
		return rebalanceWrites(working, intent.CardID, idx, intent.DestColumn), nil
	}

	return WriteSet{{CardID: intent.CardID, ColumnID: intent.DestColumn, Order: order}}, nil
}

// PlanInsert returns the order value for a brand-new card appended to a
// column with the given membership (sorted ascending by order).
func PlanInsert(dest []CardPosition) int {
	if len(dest) == 0 {
		return AppendOrder(0)
	}
	return AppendOrder(dest[len(dest)-1].Order)
}

// rebalanceWrites renumbers the destination sequence with cardID inserted at
// idx, producing one write per card in the column.
func rebalanceWrites(working []CardPosition, cardID string, idx int, columnID string) WriteSet {
	ids := make([]string, 0, len(working)+1)
	for _, c := range working[:idx] {
		ids = append(ids, c.ID)
	}
	ids = append(ids, cardID)
	for _, c := range working[idx:] {
		ids = append(ids, c.ID)
	}

	orders := Rebalance(ids)
	ws := make(WriteSet, 0, len(ids))
	for _, id := range ids {
		ws = append(ws, Write{CardID: id, ColumnID: columnID, Order: orders[id]})
	}
	return ws
}

// indexOf returns the position of cardID in cards, or -1 if absent.
func indexOf(cards []CardPosition, cardID string) int {
	for i, c := range cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// withoutCard returns cards with cardID filtered out. The input is not
// modified; when the card is absent the copy is membership-identical.
func withoutCard(cards []CardPosition, cardID string) []CardPosition {
	out := make([]CardPosition, 0, len(cards))
	for _, c := range cards {
		if c.ID != cardID {
			out = append(out, c)
		}
	}
	return out
}
