package view

import "testing"

func TestPaginate_CeilingDivision(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{100, 20, 5},
	}
	for _, c := range cases {
		p := Paginate(c.total, 0, c.size)
		if p.TotalPages != c.want {
			t.Errorf("Paginate(%d, 0, %d).TotalPages = %d, want %d", c.total, c.size, p.TotalPages, c.want)
		}
	}
}

func TestPaginate_Boundaries(t *testing.T) {
	// total=45, size=20, page=2 (zero-based): last of three pages.
	p := Paginate(45, 2, 20)

	if p.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages)
	}
	if p.HasNext {
		t.Error("Next must be disabled on the last page")
	}
	if !p.HasPrev {
		t.Error("Prev must be enabled past page 0")
	}
	if p.Label != "3 / 3 (45 записей)" {
		t.Errorf("unexpected label %q", p.Label)
	}
}

func TestPaginate_FirstPage(t *testing.T) {
	p := Paginate(45, 0, 20)
	if p.HasPrev {
		t.Error("Prev must be disabled on page 0")
	}
	if !p.HasNext {
		t.Error("Next must be enabled when more pages exist")
	}
}

func TestPaginate_HiddenForSinglePage(t *testing.T) {
	if Paginate(15, 0, 20).Visible {
		t.Error("pager must be hidden when everything fits on one page")
	}
	if Paginate(0, 0, 20).Visible {
		t.Error("pager must be hidden for an empty result set")
	}
	if !Paginate(21, 0, 20).Visible {
		t.Error("pager must be visible once a second page exists")
	}
}

func TestPagination_StepClamping(t *testing.T) {
	p := Paginate(45, 0, 20)
	if got := p.Prev(); got != 0 {
		t.Errorf("Prev from page 0 = %d, want 0", got)
	}
	if got := p.Next(); got != 1 {
		t.Errorf("Next from page 0 = %d, want 1", got)
	}

	last := Paginate(45, 2, 20)
	if got := last.Next(); got != 2 {
		t.Errorf("Next from last page = %d, want 2", got)
	}
	if got := last.Prev(); got != 1 {
		t.Errorf("Prev from page 2 = %d, want 1", got)
	}
}
