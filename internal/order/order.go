// internal/order/order.go
//
// Section display order: pure sequencing helpers.
//
// Context
// -------
// The set of sections on a landing page is unordered in storage; display
// order lives in a separate saved list that drifts out of sync freely.
// Sections created after the last save are missing from it, and deleted
// sections may still dangle inside it.  Apply reconciles the two: saved
// order first, stale ids dropped, unknown ids appended in natural order.
// The result is always a permutation of exactly the ids that exist.
//
// Reordering is whole-list replacement, never a diff: the caller builds
// the full new sequence (Move helps) and saves it wholesale.
//
// Notes
// -----
// • All functions here are pure; inputs are never mutated.
// • Oxford commas, two spaces after periods.
package order

// Apply sequences allIDs according to savedOrder.
//
//  1. Ids from savedOrder come first, in saved order, skipping any id
//     that no longer exists in allIDs.
//  2. Ids absent from savedOrder follow, in their allIDs order.
//
// An empty savedOrder therefore yields allIDs unchanged.
func Apply(allIDs, savedOrder []string) []string {
	out := make([]string, 0, len(allIDs))

	exists := make(map[string]bool, len(allIDs))
	for _, id := range allIDs {
		exists[id] = true
	}

	placed := make(map[string]bool, len(savedOrder))
	for _, id := range savedOrder {
		if exists[id] && !placed[id] {
			out = append(out, id)
			placed[id] = true
		}
	}
	for _, id := range allIDs {
		if !placed[id] {
			out = append(out, id)
			placed[id] = true
		}
	}
	return out
}

// Move returns a new sequence with id removed from its current position
// and reinserted at index to, clamped to the sequence bounds.  An id not
// present in ids is returned unchanged.
func Move(ids []string, id string, to int) []string {
	from := -1
	for i, v := range ids {
		if v == id {
			from = i
			break
		}
	}
	if from == -1 {
		return append([]string(nil), ids...)
	}

	out := make([]string, 0, len(ids))
	out = append(out, ids[:from]...)
	out = append(out, ids[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}
	out = append(out[:to], append([]string{id}, out[to:]...)...)
	return out
}
