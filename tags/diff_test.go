package tags

import "testing"

func TestDiff(t *testing.T) {
	c0 := New("a")
	placeholderID := c0.Last().ID

	t.Run("no change", func(t *testing.T) {
		if ch := Diff(c0, c0); !ch.Empty() {
			t.Errorf("Diff(c, c) = %+v, want empty", ch)
		}
	})

	t.Run("tap updates state only", func(t *testing.T) {
		c1 := Reduce(c0, Tap{ID: placeholderID})
		ch := Diff(c0, c1)
		if len(ch.Updated) != 1 || ch.Updated[0] != placeholderID {
			t.Errorf("Updated = %v, want [%s]", ch.Updated, placeholderID)
		}
		if len(ch.Inserted) != 0 || len(ch.Removed) != 0 || len(ch.Moved) != 0 {
			t.Errorf("unexpected changes %+v", ch)
		}
	})

	t.Run("split inserts a placeholder", func(t *testing.T) {
		c1 := Reduce(c0, Tap{ID: placeholderID})
		c2 := Reduce(c1, Input{ID: placeholderID, Value: "b,"})
		ch := Diff(c1, c2)
		if len(ch.Inserted) != 1 || ch.Inserted[0] != c2.Last().ID {
			t.Errorf("Inserted = %v, want new placeholder", ch.Inserted)
		}
		if len(ch.Updated) != 1 || ch.Updated[0] != placeholderID {
			t.Errorf("Updated = %v", ch.Updated)
		}
	})

	t.Run("backspace removes", func(t *testing.T) {
		c1 := Reduce(c0, Tap{ID: placeholderID})
		c2 := Reduce(c1, Backspace{ID: placeholderID})
		ch := Diff(c1, c2)
		if len(ch.Removed) != 1 || ch.Removed[0] != placeholderID {
			t.Errorf("Removed = %v", ch.Removed)
		}
		if len(ch.Updated) != 1 || ch.Updated[0] != c0.At(0).ID {
			t.Errorf("Updated = %v, want the tag that became editable", ch.Updated)
		}
	})
}
