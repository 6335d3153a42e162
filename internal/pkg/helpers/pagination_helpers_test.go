package helpers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	cases := []struct {
		page, size int
		wantOffset uint64
		wantLimit  int
	}{
		{1, 20, 0, 20},
		{3, 10, 20, 10},
		{0, 10, 0, 10},
		{-5, 10, 0, 10},
		{2, 0, 20, DefaultPageSize},
		{1, MaxPageSize + 1, 0, DefaultPageSize},
	}
	for _, c := range cases {
		offset, limit := CalculateOffsetLimit(c.page, c.size)
		if offset != c.wantOffset || limit != c.wantLimit {
			t.Errorf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
				c.page, c.size, offset, limit, c.wantOffset, c.wantLimit)
		}
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 20)
	if info.TotalPages != 3 || info.CurrentPage != 2 || info.TotalItems != 45 {
		t.Errorf("info = %+v", info)
	}

	// empty result set still reports one page
	info = NewPaginationInfo(0, 1, 20)
	if info.TotalPages != 1 || info.CurrentPage != 1 {
		t.Errorf("empty info = %+v", info)
	}

	// page past the end is clamped
	info = NewPaginationInfo(10, 9, 20)
	if info.CurrentPage != 1 {
		t.Errorf("clamped page = %d", info.CurrentPage)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"", 1, DefaultPageSize},
		{"page=3&size=50", 3, 50},
		{"page=abc&size=xyz", 1, DefaultPageSize},
		{"page=-1&size=-1", 1, DefaultPageSize},
		{"page=1&size=9999", 1, DefaultPageSize},
	}
	for _, c := range cases {
		ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
		ctx.Request = httptest.NewRequest("GET", "/?"+c.query, nil)

		page, size := ParsePaginationParams(ctx)
		if page != c.wantPage || size != c.wantSize {
			t.Errorf("ParsePaginationParams(%q) = (%d, %d), want (%d, %d)",
				c.query, page, size, c.wantPage, c.wantSize)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if d := ParseDuration("45m", time.Hour); d != 45*time.Minute {
		t.Errorf("ParseDuration(45m) = %v", d)
	}
	if d := ParseDuration("", time.Hour); d != time.Hour {
		t.Errorf("empty fallback = %v", d)
	}
	if d := ParseDuration("soon", time.Hour); d != time.Hour {
		t.Errorf("malformed fallback = %v", d)
	}
}
