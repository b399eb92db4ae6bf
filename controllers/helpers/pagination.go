package helpers

import (
	"math"
	"strconv"
)

type PageQuery struct {
	Limit int
	Page  int
	Skip  int
}

type PageOptions struct {
	DefaultLimit int
	MaxLimit     int
	MaxPage      int
}

func DefaultPageOptions() PageOptions {
	return PageOptions{DefaultLimit: 10, MaxLimit: 50, MaxPage: 10000}
}

// ParsePagination nunca falla: valores ausentes, no numéricos, cero o
// negativos caen a los valores por defecto en silencio.
func ParsePagination(rawLimit, rawPage string, opts PageOptions) PageQuery {
	limit := opts.DefaultLimit
	if v, err := strconv.ParseFloat(rawLimit, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
		if v > float64(opts.MaxLimit) {
			v = float64(opts.MaxLimit)
		}
		limit = int(v)
		if limit < 1 {
			limit = 1
		}
	}

	page := 1
	if v, err := strconv.ParseFloat(rawPage, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0 {
		if v > float64(opts.MaxPage) {
			v = float64(opts.MaxPage)
		}
		page = int(v)
		if page < 1 {
			page = 1
		}
	}

	return PageQuery{Limit: limit, Page: page, Skip: (page - 1) * limit}
}

// TotalPages regresa ceil(total/limit), o 0 cuando no hay documentos.
func TotalPages(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
