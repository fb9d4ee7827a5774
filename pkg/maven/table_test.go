package maven

import (
	"slices"
	"testing"
)

func TestTableBuilder(t *testing.T) {
	b := NewTableBuilder()

	foo := Coordinate{GroupID: "com.x", ArtifactID: "foo", Version: "1.0"}
	bar := Coordinate{GroupID: "com.x", ArtifactID: "bar", Version: "2.0"}

	if b.Put("foo-1.0", foo) {
		t.Error("first Put reported a replacement")
	}
	if b.Put("bar-2.0", bar) {
		t.Error("first Put reported a replacement")
	}

	table := b.Build()
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	got, ok := table.Lookup("foo-1.0")
	if !ok || got != foo {
		t.Errorf("Lookup(foo-1.0) = %+v, %v", got, ok)
	}
	if _, ok := table.Lookup("missing"); ok {
		t.Error("Lookup(missing) should report false")
	}

	if keys := table.Keys(); !slices.Equal(keys, []string{"bar-2.0", "foo-1.0"}) {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestTableBuilderReplace(t *testing.T) {
	b := NewTableBuilder()
	b.Put("dup", Coordinate{GroupID: "first"})
	if !b.Put("dup", Coordinate{GroupID: "second"}) {
		t.Error("second Put should report a replacement")
	}

	got, _ := b.Build().Lookup("dup")
	if got.GroupID != "second" {
		t.Errorf("GroupID = %q, want %q", got.GroupID, "second")
	}
}

func TestTableIsSnapshot(t *testing.T) {
	b := NewTableBuilder()
	b.Put("a", Coordinate{GroupID: "g"})
	table := b.Build()

	b.Put("b", Coordinate{GroupID: "g"})
	if table.Len() != 1 {
		t.Errorf("built table changed after Put: Len() = %d", table.Len())
	}
}

func TestNilTable(t *testing.T) {
	var table *Table
	if table.Len() != 0 {
		t.Error("nil table should be empty")
	}
	if _, ok := table.Lookup("x"); ok {
		t.Error("nil table lookup should miss")
	}
	if table.Keys() != nil {
		t.Error("nil table should have no keys")
	}
}
