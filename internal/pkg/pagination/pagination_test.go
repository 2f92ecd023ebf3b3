package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func queryFrom(target string) Query {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return FromContext(c, DefaultLimit)
}

func TestFromContext(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantSkip  int
		wantLimit int
	}{
		{"defaults", "/links", 0, DefaultLimit},
		{"explicit", "/links?skip=20&limit=5", 20, 5},
		{"negative skip clamped", "/links?skip=-3", 0, DefaultLimit},
		{"zero limit falls back", "/links?limit=0", 0, DefaultLimit},
		{"limit capped", "/links?limit=5000", 0, MaxLimit},
		{"garbage ignored", "/links?skip=abc&limit=xyz", 0, DefaultLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := queryFrom(tt.target)
			assert.Equal(t, tt.wantSkip, q.Skip)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}
