package middleware

import (
	"CityGuide/utils"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlerMiddleware(zap.NewNop()))
	r.GET("/x", handler)
	return r
}

func TestErrorHandlerMiddleware_CustomError(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(utils.NewCustomError(http.StatusNotFound, "City not found"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"City not found"}`, rec.Body.String())
}

func TestErrorHandlerMiddleware_CustomErrorWithDetail(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(utils.NewCustomError(http.StatusInternalServerError, "Failed").WithDetail(errors.New("boom")))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Failed","error":"boom"}`, rec.Body.String())
}

func TestErrorHandlerMiddleware_UnknownError(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("disk on fire"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rec.Body.String())
}

func TestErrorHandlerMiddleware_NoError(t *testing.T) {
	r := newRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
