package tablefile

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/maruel/tablekit/internal/table"
)

func TestChunkPath(t *testing.T) {
	tests := []struct {
		base string
		n    int
		want string
	}{
		{"t.csv", 1, "t_part1.csv"},
		{filepath.Join("out", "t.gob"), 12, filepath.Join("out", "t_part12.gob")},
		{"a.b.csv", 2, "a.b_part2.csv"},
		{"noext", 3, "noext_part3"},
	}
	for _, tt := range tests {
		if got := ChunkPath(tt.base, tt.n); got != tt.want {
			t.Errorf("ChunkPath(%q, %d) = %q, want %q", tt.base, tt.n, got, tt.want)
		}
	}
}

func sampleTable() *table.Table {
	return table.FromRows(
		table.RowOf("ID", "Name", "Age"),
		table.RowOf(1, "Alice", 30),
		table.RowOf(2, "Bob", 25),
		table.RowOf(3, "Carol", 35),
	)
}

func TestSave(t *testing.T) {
	for _, ext := range []string{".csv", ".gob"} {
		t.Run(ext, func(t *testing.T) {
			dir := t.TempDir()
			base := filepath.Join(dir, "t"+ext)
			src := sampleTable()
			paths, err := Save(t.Context(), src, base, 2)
			if err != nil {
				t.Fatal(err)
			}
			want := []string{ChunkPath(base, 1), ChunkPath(base, 2)}
			if !slices.Equal(paths, want) {
				t.Fatalf("paths = %v, want %v", paths, want)
			}
			// The header is the first row of the first chunk only.
			first, err := ReadFile(paths[0])
			if err != nil {
				t.Fatal(err)
			}
			if first.Len() != 2 || first.Header()[0] != "ID" {
				t.Errorf("first chunk = %v", first.Rows())
			}
			second, err := ReadFile(paths[1])
			if err != nil {
				t.Fatal(err)
			}
			if second.Len() != 2 || second.Header()[1] != "Bob" {
				t.Errorf("second chunk = %v", second.Rows())
			}

			var rows []table.Row
			for _, p := range paths {
				c, err := ReadFile(p)
				if err != nil {
					t.Fatal(err)
				}
				rows = append(rows, c.Rows()...)
			}
			got := table.FromRows(rows...)
			if ext == ".csv" {
				if !slices.EqualFunc(got.Rows(), src.Rows(), func(a, b table.Row) bool {
					return slices.Equal(a.Strings(), b.Strings())
				}) {
					t.Errorf("reassembled %v, want %v", got.Rows(), src.Rows())
				}
			} else if !got.Equal(src) {
				t.Errorf("reassembled %v, want %v", got.Rows(), src.Rows())
			}
		})
	}
}

func TestSave_OneRowPerFile(t *testing.T) {
	base := filepath.Join(t.TempDir(), "t.csv")
	paths, err := Save(t.Context(), sampleTable(), base, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 4 {
		t.Fatalf("got %d chunks, want 4", len(paths))
	}
	last, err := ReadFile(paths[3])
	if err != nil {
		t.Fatal(err)
	}
	if got := last.Header(); !slices.Equal(got, []string{"3", "Carol", "35"}) {
		t.Errorf("last chunk = %v", got)
	}
}

func TestSave_EmptySingleFieldChunks(t *testing.T) {
	base := filepath.Join(t.TempDir(), "n.csv")
	src := table.FromRows(table.RowOf("Name"), table.RowOf(""), table.RowOf("Bob"), table.RowOf(""))
	paths, err := Save(t.Context(), src, base, 2)
	if err != nil {
		t.Fatal(err)
	}
	var rows []table.Row
	for _, p := range paths {
		c, err := ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		rows = append(rows, c.Rows()...)
	}
	if got := table.FromRows(rows...); !got.Equal(src) {
		t.Errorf("reassembled %v, want %v", got.Rows(), src.Rows())
	}
}

func TestSave_Errors(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Save(t.Context(), sampleTable(), filepath.Join(dir, "t.pkl"), 2)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("wrote %d files", len(entries))
		}
	})
	t.Run("max rows", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Save(t.Context(), sampleTable(), filepath.Join(dir, "t.csv"), 0)
		if !errors.Is(err, table.ErrOutOfRange) {
			t.Errorf("err = %v, want ErrOutOfRange", err)
		}
	})
	t.Run("missing directory", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "nope", "t.csv")
		paths, err := Save(t.Context(), sampleTable(), base, 2)
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(paths) != 0 {
			t.Errorf("paths = %v", paths)
		}
	})
	t.Run("empty table", func(t *testing.T) {
		dir := t.TempDir()
		paths, err := Save(t.Context(), table.FromRows(), filepath.Join(dir, "t.gob"), 2)
		if err != nil || len(paths) != 0 {
			t.Errorf("Save() = %v, %v", paths, err)
		}
	})
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	src := table.FromRows(table.RowOf("ID", "Name"), table.RowOf(1, "Alice"))
	p := filepath.Join(dir, "report.txt")
	if err := SaveFile(p, src); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "ID | Name\n1 | Alice\n"; got != want {
		t.Errorf("report = %q, want %q", got, want)
	}
	if _, err := ReadFile(p); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("reading a report: err = %v, want ErrUnsupportedFormat", err)
	}
	if err := SaveFile(filepath.Join(dir, "x.json"), src); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}
