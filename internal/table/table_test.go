package table

import (
	"errors"
	"slices"
	"testing"
)

// people returns a small table used across tests.
func people() *Table {
	return FromRows(
		RowOf("ID", "Name", "Age"),
		RowOf(1, "Alice", 30),
		RowOf(2, "Bob", 25),
		RowOf(3, "Carol", 35),
	)
}

func TestTable(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		tbl := New("a", "b")
		if tbl.Len() != 1 || tbl.DataLen() != 0 {
			t.Errorf("Len() = %d, DataLen() = %d, want 1, 0", tbl.Len(), tbl.DataLen())
		}
		if got := tbl.Header(); !slices.Equal(got, []string{"a", "b"}) {
			t.Errorf("Header() = %v", got)
		}
	})
	t.Run("AppendRow", func(t *testing.T) {
		tbl := New("a", "b")
		if err := tbl.AppendRow(Int(1), Int(2)); err != nil {
			t.Fatal(err)
		}
		if err := tbl.AppendRow(Int(1)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("short row: err = %v, want ErrOutOfRange", err)
		}
		if tbl.DataLen() != 1 {
			t.Errorf("DataLen() = %d, want 1", tbl.DataLen())
		}
		empty := FromRows()
		if err := empty.AppendRow(String("h")); err != nil {
			t.Fatal(err)
		}
		if got := empty.Header(); !slices.Equal(got, []string{"h"}) {
			t.Errorf("first appended row should become the header, got %v", got)
		}
	})
	t.Run("Clone", func(t *testing.T) {
		tbl := people()
		c := tbl.Clone()
		if !c.Equal(tbl) {
			t.Fatal("clone differs")
		}
		c.Rows()[1][1] = String("Zed")
		if c.Equal(tbl) {
			t.Error("clone shares storage")
		}
	})
	t.Run("Validate", func(t *testing.T) {
		if err := people().Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
		bad := FromRows(RowOf("a", "b"), RowOf(1))
		if err := bad.Validate(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Validate() = %v, want ErrOutOfRange", err)
		}
	})
	t.Run("empty", func(t *testing.T) {
		tbl := FromRows()
		if tbl.Len() != 0 || tbl.DataLen() != 0 || len(tbl.Header()) != 0 {
			t.Errorf("unexpected sizes %d/%d", tbl.Len(), tbl.DataLen())
		}
	})
}

func TestRowsByPosition(t *testing.T) {
	tbl := people()
	tests := []struct {
		name        string
		start, stop int
		want        []Row
		wantErr     bool
	}{
		{"single header", 0, -1, []Row{RowOf("ID", "Name", "Age")}, false},
		{"single data", 2, -1, []Row{RowOf(2, "Bob", 25)}, false},
		{"range", 1, 3, []Row{RowOf(1, "Alice", 30), RowOf(2, "Bob", 25)}, false},
		{"empty range", 2, 2, []Row{}, false},
		{"range to end", 3, 4, []Row{RowOf(3, "Carol", 35)}, false},
		{"single past end", 4, -1, nil, true},
		{"negative start", -1, -1, nil, true},
		{"stop past end", 1, 5, nil, true},
		{"start after stop", 3, 2, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.RowsByPosition(tt.start, tt.stop, false)
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfRange) {
					t.Fatalf("err = %v, want ErrOutOfRange", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if !slices.EqualFunc(got, tt.want, Row.Equal) {
				t.Errorf("RowsByPosition(%d, %d) = %v, want %v", tt.start, tt.stop, got, tt.want)
			}
		})
	}

	t.Run("aliasing", func(t *testing.T) {
		tbl := people()
		rows, err := tbl.RowsByPosition(1, 2, false)
		if err != nil {
			t.Fatal(err)
		}
		rows[0][1] = String("Alicia")
		if v, _ := tbl.Value(Name("Name")); !v.Equal(String("Alicia")) {
			t.Errorf("aliased row was not shared, table has %#v", v)
		}
		// Appending to the result must not clobber the next table row.
		_ = append(rows, RowOf(9, "X", 9))
		if v := tbl.Rows()[2][1]; !v.Equal(String("Bob")) {
			t.Errorf("append overwrote table row: %#v", v)
		}
	})
	t.Run("copy", func(t *testing.T) {
		tbl := people()
		rows, err := tbl.RowsByPosition(1, -1, true)
		if err != nil {
			t.Fatal(err)
		}
		rows[0][1] = String("Alicia")
		if v, _ := tbl.Value(Name("Name")); !v.Equal(String("Alice")) {
			t.Errorf("copied row shares storage, table has %#v", v)
		}
	})
}

func TestRowsByKey(t *testing.T) {
	tbl := FromRows(
		RowOf("ID", "Name"),
		RowOf(1, "Alice"),
		RowOf(2, "Bob"),
		RowOf(3, "Carol"),
		RowOf(1, "Again"),
	)
	tests := []struct {
		name string
		keys []Value
		want []Row
	}{
		{"two keys", []Value{Int(1), Int(3)}, []Row{RowOf(1, "Alice"), RowOf(3, "Carol"), RowOf(1, "Again")}},
		{"order follows table", []Value{Int(3), Int(2)}, []Row{RowOf(2, "Bob"), RowOf(3, "Carol")}},
		{"no keys", nil, nil},
		{"no match", []Value{Int(7)}, nil},
		{"kind sensitive", []Value{String("1")}, nil},
		{"header not matched", []Value{String("ID")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tbl.RowsByKey(tt.keys, false)
			if !slices.EqualFunc(got, tt.want, Row.Equal) {
				t.Errorf("RowsByKey(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}

	t.Run("scenario", func(t *testing.T) {
		tbl := FromRows(RowOf("ID", "Name"), RowOf(1, "Alice"), RowOf(2, "Bob"), RowOf(3, "Carol"))
		got := tbl.RowsByKey([]Value{Int(1), Int(3)}, true)
		want := []Row{RowOf(1, "Alice"), RowOf(3, "Carol")}
		if !slices.EqualFunc(got, want, Row.Equal) {
			t.Fatalf("got %v, want %v", got, want)
		}
		got[0][1] = String("X")
		if v, _ := tbl.Value(Index(1)); !v.Equal(String("Alice")) {
			t.Errorf("copy shares storage")
		}
	})
}

func TestColumnAccessors(t *testing.T) {
	t.Run("Values", func(t *testing.T) {
		tbl := people()
		got, err := tbl.Values(Name("Age"))
		if err != nil {
			t.Fatal(err)
		}
		if want := []Value{Int(30), Int(25), Int(35)}; !slices.EqualFunc(got, want, Value.Equal) {
			t.Errorf("Values(Age) = %v, want %v", got, want)
		}
		byIndex, err := tbl.Values(Index(2))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.EqualFunc(got, byIndex, Value.Equal) {
			t.Errorf("Values(2) = %v, want %v", byIndex, got)
		}
		if _, err := tbl.Values(Name("Missing")); !errors.Is(err, ErrSchemaConflict) {
			t.Errorf("unknown name: err = %v, want ErrSchemaConflict", err)
		}
		if _, err := tbl.Values(Index(3)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("bad index: err = %v, want ErrOutOfRange", err)
		}
		if got, err := New("a").Values(Index(0)); err != nil || len(got) != 0 {
			t.Errorf("header-only Values() = %v, %v", got, err)
		}
	})
	t.Run("Value", func(t *testing.T) {
		tbl := people()
		v, err := tbl.Value(Name("Name"))
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equal(String("Alice")) {
			t.Errorf("Value(Name) = %#v", v)
		}
		if _, err := New("a").Value(Index(0)); !errors.Is(err, ErrEmptyTable) {
			t.Errorf("err = %v, want ErrEmptyTable", err)
		}
	})
	t.Run("duplicate names", func(t *testing.T) {
		tbl := FromRows(RowOf("x", "x"), RowOf(1, 2))
		v, err := tbl.Value(Name("x"))
		if err != nil {
			t.Fatal(err)
		}
		if !v.Equal(Int(1)) {
			t.Errorf("first match should win, got %#v", v)
		}
	})
	t.Run("SetValues", func(t *testing.T) {
		tbl := people()
		want := []Value{Int(40), Int(45), Int(50)}
		if err := tbl.SetValues(want, Name("Age")); err != nil {
			t.Fatal(err)
		}
		got, _ := tbl.Values(Name("Age"))
		if !slices.EqualFunc(got, want, Value.Equal) {
			t.Errorf("after SetValues got %v", got)
		}
		if err := tbl.SetValues(want[:2], Name("Age")); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("short values: err = %v, want ErrOutOfRange", err)
		}
	})
	t.Run("SetValue", func(t *testing.T) {
		tbl := people()
		if err := tbl.SetValue(String("Eve"), Name("Name")); err != nil {
			t.Fatal(err)
		}
		got, _ := tbl.Values(Name("Name"))
		want := []Value{String("Eve"), String("Bob"), String("Carol")}
		if !slices.EqualFunc(got, want, Value.Equal) {
			t.Errorf("after SetValue got %v", got)
		}
		if err := New("a").SetValue(Int(1), Index(0)); !errors.Is(err, ErrEmptyTable) {
			t.Errorf("err = %v, want ErrEmptyTable", err)
		}
	})
}
