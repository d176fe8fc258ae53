package layout

import (
	"testing"

	"github.com/young1lin/derin-layout/internal/grid"
)

func sampleTable() *Table {
	return &Table{
		Cells: []Cell{
			{Name: "header", Position: Position{Row: 0, Col: 0}, ColSpan: 3},
			{Name: "nav", Position: Position{Row: 1, Col: 0}, RowSpan: 2},
			{Name: "body", Position: Position{Row: 1, Col: 1}, ColSpan: 2,
				Bounds: grid.SizeBounds{Min: grid.Dims{Width: 40}, Max: grid.Dims{Height: 30}}},
			{Name: "footer", Position: Position{Row: 2, Col: 1}},
		},
	}
}

func TestTableGridSize(t *testing.T) {
	tbl := sampleTable()
	if got := tbl.GridSize(0); got != (grid.GridSize{X: 3, Y: 3}) {
		t.Errorf("GridSize = %+v, want 3x3", got)
	}

	tbl.Cols = 5
	if got := tbl.GridSize(0); got != (grid.GridSize{X: 5, Y: 3}) {
		t.Errorf("GridSize with fixed columns = %+v, want 5x3", got)
	}
}

func TestTablePositions(t *testing.T) {
	tbl := sampleTable()

	pos, ok := tbl.Positions(Named("body"), 7, 10)
	if !ok {
		t.Fatal("body not found")
	}
	wantSpan := grid.WidgetSpan{X: grid.Span(1, 3), Y: grid.Span(1, 2)}
	if pos.Span != wantSpan {
		t.Errorf("span = %+v, want %+v", pos.Span, wantSpan)
	}
	if pos.SizeBounds.Min.Width != 40 || pos.SizeBounds.Max.Height != 30 {
		t.Errorf("bounds = %+v", pos.SizeBounds)
	}
	if pos.SizeBounds.Max.Width != grid.Unbounded {
		t.Errorf("zero max width should be unbounded, got %d", pos.SizeBounds.Max.Width)
	}

	pos, ok = tbl.Positions(Numbered(1), 1, 4)
	if !ok || pos.Span.Y != grid.Span(1, 3) {
		t.Errorf("unnamed child 1 should take nav, got %+v, %v", pos, ok)
	}

	if _, ok := tbl.Positions(Named("missing"), 0, 4); ok {
		t.Error("unknown name should not be placed")
	}
	if _, ok := tbl.Positions(Numbered(9), 9, 10); ok {
		t.Error("index past the cells should not be placed")
	}
}

func TestTableFilter(t *testing.T) {
	tests := []struct {
		name string
		show []string
		hide []string
		want []string
	}{
		{
			name: "empty show/hide - keeps everything",
			want: []string{"header", "nav", "body", "footer"},
		},
		{
			name: "show list - only listed cells",
			show: []string{"body", "nav"},
			want: []string{"nav", "body"},
		},
		{
			name: "hide list - drops listed cells",
			hide: []string{"footer"},
			want: []string{"header", "nav", "body"},
		},
		{
			name: "hide takes priority over show",
			show: []string{"body", "nav"},
			hide: []string{"nav"},
			want: []string{"body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := sampleTable()
			got := tbl.Filter(tt.show, tt.hide).Names()
			if len(got) != len(tt.want) {
				t.Fatalf("Filter() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTableFilterKeepsGridSize(t *testing.T) {
	tbl := sampleTable()
	filtered := tbl.Filter([]string{"nav"}, nil)
	if got := filtered.GridSize(0); got != (grid.GridSize{X: 3, Y: 3}) {
		t.Errorf("filtered GridSize = %+v, want 3x3", got)
	}
}
