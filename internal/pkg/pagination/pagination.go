package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// FromQuery reads page and limit, falling back to defaults for missing or
// malformed values.
func FromQuery(c *gin.Context) Params {
	p := Params{
		Page:  parseIntDefault(c.Query("page"), 1),
		Limit: parseIntDefault(c.Query("limit"), DefaultLimit),
	}
	return p.normalize()
}

func (p Params) normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func New[T any](items []T, total int64, p Params) Page[T] {
	if items == nil {
		items = []T{}
	}
	p = p.normalize()
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Page[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit, TotalPages: pages}
}

// Map converts the items of a page, keeping its counters.
func Map[T, U any](pg Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(pg.Items))
	for _, it := range pg.Items {
		out = append(out, f(it))
	}
	return Page[U]{Items: out, Total: pg.Total, Page: pg.Page, Limit: pg.Limit, TotalPages: pg.TotalPages}
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
