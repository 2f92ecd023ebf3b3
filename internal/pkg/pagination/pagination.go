package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Query holds parsed skip/limit pagination parameters.
type Query struct {
	Skip  int
	Limit int
}

// FromContext extracts and validates skip/limit params from the request.
func FromContext(c *gin.Context, defaultLimit int) Query {
	skip := parseIntOr(c.DefaultQuery("skip", "0"), 0)
	limit := parseIntOr(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)), defaultLimit)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Query{Skip: skip, Limit: limit}
}

// Paginate applies offset/limit to a GORM query and returns the total count
// of the filtered set, counted before the page slice is taken.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	if err := db.Offset(q.Skip).Limit(q.Limit).Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
