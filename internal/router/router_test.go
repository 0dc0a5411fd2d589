package router_test

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog-api/internal/router"
	"github.com/oksasatya/go-ddd-blog-api/internal/router/modules"
)

func init() { gin.SetMode(gin.TestMode) }

func newRegistry() *router.Registry {
	reg := router.NewRegistry(gin.New())
	reg.Add(modules.NewHealthModule(handlers.NewHealthHandler(nil)))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(nil, nil), nil))
	reg.Add(modules.NewPostModule(handlers.NewPostHandler(nil, nil), nil))
	reg.AddRoot(modules.NewDebugModule())
	reg.AddRoot(modules.NewDocsModule())
	reg.RegisterAll()
	return reg
}

func TestRegistry_Routes(t *testing.T) {
	reg := newRegistry()

	var got []string
	for _, r := range reg.Engine.Routes() {
		got = append(got, r.Method+" "+r.Path)
	}
	sort.Strings(got)

	want := []string{
		"DELETE /api/v1/posts/:id",
		"DELETE /api/v1/users/:id",
		"GET /api-docs/*any",
		"GET /api/v1/health",
		"GET /api/v1/health/detailed",
		"GET /api/v1/posts",
		"GET /api/v1/posts/:id",
		"GET /api/v1/posts/search",
		"GET /api/v1/posts/user/:userId",
		"GET /api/v1/users",
		"GET /api/v1/users/:id",
		"GET /api/v1/users/search",
		"GET /debug/vars",
		"GET /metrics",
		"PATCH /api/v1/posts/:id",
		"PATCH /api/v1/users/:id",
		"POST /api/v1/posts",
		"POST /api/v1/posts/:id/publish",
		"POST /api/v1/users",
	}
	assert.Equal(t, want, got)
}

func TestRegistry_MetricsAndDocs(t *testing.T) {
	reg := newRegistry()

	w := httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api-docs/doc.json", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/v1/posts/{id}/publish"`)
	assert.Contains(t, w.Body.String(), `"basePath": "/api"`)
}

type pingModule struct{}

func (pingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func TestRegistry_UseAppliesToAPIOnly(t *testing.T) {
	reg := router.NewRegistry(gin.New())
	reg.Use(func(c *gin.Context) {
		c.Header("X-Api-Group", "1")
		c.Next()
	})
	reg.Add(pingModule{})
	reg.AddRoot(modules.NewDebugModule())
	reg.RegisterAll()

	w := httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Api-Group"))

	w = httptest.NewRecorder()
	reg.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Api-Group"))
}
