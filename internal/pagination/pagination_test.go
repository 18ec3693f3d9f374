package pagination

import "testing"

func TestDefaults(t *testing.T) {
	tests := []struct {
		in       PageRequest
		wantPage int
		wantSize int
	}{
		{PageRequest{}, 1, DefaultPageSize},
		{PageRequest{Page: 3}, 3, DefaultPageSize},
		{PageRequest{Page: 2, PageSize: 500}, 2, MaxPageSize},
		{PageRequest{Page: -1, PageSize: 5}, 1, 5},
	}
	for _, tt := range tests {
		p := tt.in
		p.Defaults()
		if p.Page != tt.wantPage || p.PageSize != tt.wantSize {
			t.Errorf("%+v.Defaults() = %+v", tt.in, p)
		}
	}
}

func TestRequested(t *testing.T) {
	if (PageRequest{}).Requested() {
		t.Error("zero request should not count as requested")
	}
	if !(PageRequest{PageSize: 10}).Requested() {
		t.Error("page_size alone should count as requested")
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("rounds_pages_up", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2}, 1, 2, 5)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil_data_becomes_empty", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 20, 0)
		if resp.Data == nil || resp.TotalPages != 0 {
			t.Errorf("unexpected response %+v", resp)
		}
	})

	t.Run("offset", func(t *testing.T) {
		if got := (PageRequest{Page: 3, PageSize: 10}).Offset(); got != 20 {
			t.Errorf("expected offset 20, got %d", got)
		}
	})
}
