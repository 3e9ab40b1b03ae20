package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]Params{
		"/":                     {Page: 1, Limit: DefaultLimit},
		"/?page=3&limit=20":     {Page: 3, Limit: 20},
		"/?page=0&limit=-1":     {Page: 1, Limit: DefaultLimit},
		"/?page=abc&limit=1000": {Page: 1, Limit: MaxLimit},
	}
	for url, want := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", url, nil)
		assert.Equal(t, want, FromQuery(c), url)
	}
}

func TestNewAndMap(t *testing.T) {
	pg := New([]int{1, 2, 3}, 23, Params{Page: 2, Limit: 10})
	assert.Equal(t, 3, pg.TotalPages)
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())

	doubled := Map(pg, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled.Items)
	assert.Equal(t, int64(23), doubled.Total)

	empty := New[string](nil, 0, Params{Page: 1, Limit: 10})
	assert.NotNil(t, empty.Items)
	assert.Equal(t, 0, empty.TotalPages)
}
