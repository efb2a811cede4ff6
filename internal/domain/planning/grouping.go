// Package planning covers the project configuration flow: milestone configs
// seeded from a workflow template, a registry of user-authored custom tasks,
// and the ticket generation engine that turns both into a board-ready ticket
// batch.
package planning

import "loomflow/internal/domain/catalog"

// UngroupedKey is the reserved bucket for items missing the grouping field.
const UngroupedKey = "ungrouped"

// Group is one named bucket of order items.
type Group struct {
	Key   string
	Items []catalog.OrderItem
}

// GroupItems partitions items into buckets by the named field. Bucket order
// is the insertion order of each key's first occurrence and item order is
// preserved within buckets, so the result is deterministic for identical
// input. Items missing the field land in the ungrouped bucket; the function
// itself never fails on an unknown field.
func GroupItems(items []catalog.OrderItem, field string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, item := range items {
		key := item.GroupingKey(field)
		if key == "" {
			key = UngroupedKey
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
