package tags

import "github.com/google/uuid"

// Changes lists what a render pass has to rebuild between two snapshots.
type Changes struct {
	Inserted []uuid.UUID // present in next only, in next's order
	Removed  []uuid.UUID // present in prev only, in prev's order
	Updated  []uuid.UUID // present in both with a different value or state
	Moved    []uuid.UUID // present in both at a different position
}

// Empty reports whether nothing changed.
func (ch Changes) Empty() bool {
	return len(ch.Inserted) == 0 && len(ch.Removed) == 0 && len(ch.Updated) == 0 && len(ch.Moved) == 0
}

// Diff compares two collections by tag id.
func Diff(prev, next Collection) Changes {
	var ch Changes
	for _, t := range prev.tags {
		if _, ok := next.index[t.ID]; !ok {
			ch.Removed = append(ch.Removed, t.ID)
		}
	}
	for i, t := range next.tags {
		j, ok := prev.index[t.ID]
		if !ok {
			ch.Inserted = append(ch.Inserted, t.ID)
			continue
		}
		if old := prev.tags[j]; old.Value != t.Value || old.IsInitial != t.IsInitial {
			ch.Updated = append(ch.Updated, t.ID)
		}
		if j != i {
			ch.Moved = append(ch.Moved, t.ID)
		}
	}
	return ch
}
