package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(3, time.Minute))
	router.POST("/comments", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doRequest := func() int {
		req := httptest.NewRequest("POST", "/comments", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// 窗口内前 3 次放行
	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusOK, doRequest())

	// 第 4 次被限流
	assert.Equal(t, http.StatusTooManyRequests, doRequest())
}

func TestRateLimit_PerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, time.Minute))
	router.POST("/login", func(c *gin.Context) {
		c.String(200, "ok")
	})

	doRequest := func(addr string) int {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	// 不同 IP 的配额互不影响
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.1:1111"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest("10.0.0.1:1111"))
	assert.Equal(t, http.StatusOK, doRequest("10.0.0.2:2222"))
}
