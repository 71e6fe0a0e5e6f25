package paginator

import "testing"

func TestPaginateQueryAdjust(t *testing.T) {
	cases := []struct {
		name      string
		in        PaginateQuery
		wantPage  int
		wantLimit int64
	}{
		{"defaults on zero values", PaginateQuery{}, DefaultPage, DefaultLimit},
		{"defaults on negatives", PaginateQuery{Page: -3, Limit: -10}, DefaultPage, DefaultLimit},
		{"caps limit", PaginateQuery{Page: 2, Limit: 5000}, 2, MaxLimit},
		{"keeps valid values", PaginateQuery{Page: 3, Limit: 25}, 3, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.in
			q.Adjust()
			if q.Page != tc.wantPage || q.Limit != tc.wantLimit {
				t.Fatalf("expected page=%d limit=%d, got page=%d limit=%d", tc.wantPage, tc.wantLimit, q.Page, q.Limit)
			}
		})
	}
}

func TestPaginateQueryOffset(t *testing.T) {
	q := PaginateQuery{Page: 3, Limit: 20}
	if got := q.Offset(); got != 40 {
		t.Fatalf("expected offset 40, got %d", got)
	}

	q = PaginateQuery{Page: 1, Limit: 20}
	if got := q.Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}

func TestPaginatorToResponse(t *testing.T) {
	p := Paginator{Total: 45, Count: 20, PerPage: 20, CurrentPage: 2}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
	}
	if !resp.HasNext {
		t.Error("page 2 of 3 must have a next page")
	}
	if !resp.HasPrev {
		t.Error("page 2 must have a previous page")
	}

	empty := Paginator{}
	if empty.TotalPages() != 0 || empty.HasNextPage() || empty.HasPreviousPage() {
		t.Error("empty paginator must report no pages")
	}
}
