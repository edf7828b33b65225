package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestFromContext(t *testing.T) {
	cases := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", DefaultPage, DefaultSize},
		{"explicit", "page=3&size=25", 3, 25},
		{"zero page clamped", "page=0", 1, DefaultSize},
		{"negative size clamped", "size=-5", 1, DefaultSize},
		{"oversize clamped", "size=5000", 1, MaxSize},
		{"garbage ignored", "page=abc&size=xyz", DefaultPage, DefaultSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := FromContext(queryContext(t, tc.query))
			if q.Page != tc.wantPage || q.Size != tc.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", q.Page, q.Size, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestMeta(t *testing.T) {
	m := Meta(25, Query{Page: 2, Size: 10})
	if m.TotalPage != 3 {
		t.Errorf("TotalPage = %d, want 3", m.TotalPage)
	}
	if !m.HasNextPage {
		t.Error("page 2 of 3 should have a next page")
	}

	m = Meta(0, Query{Page: 1, Size: 10})
	if m.TotalPage != 0 || m.HasNextPage {
		t.Errorf("empty result meta wrong: %+v", m)
	}
}
