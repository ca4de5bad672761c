// Package ordering computes order values for cards in ordered columns.
//
// Order values are allocated with gaps (multiples of 100 for appended cards)
// so that most insertions and moves touch a single document. The package has
// two halves:
//
//   - the position allocator (AppendOrder, InsertBetween, Rebalance) picks a
//     numeric order for one placement without renumbering neighbors;
//   - PlanMove and PlanInsert translate a move intent plus current column
//     membership into the minimal write-set the storage layer must apply
//     atomically.
//
// Everything here is pure and synchronous: the package computes intents and
// never mutates persisted state. When no integer gap remains between two
// neighbors, the destination column is renumbered in full; that case is
// absorbed internally and callers only ever see a write-set or a named error.
package ordering
