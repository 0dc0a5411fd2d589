package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
)

type PostModule struct {
	Handler *handlers.PostHandler
	Limit   gin.HandlerFunc
}

func NewPostModule(h *handlers.PostHandler, limit gin.HandlerFunc) *PostModule {
	return &PostModule{Handler: h, Limit: limit}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	posts := rg.Group("/v1/posts")
	{
		posts.GET("", m.Handler.List)
		posts.GET("/search", m.Handler.Search)
		posts.GET("/user/:userId", m.Handler.ListByUser)
		posts.GET("/:id", m.Handler.Get)
	}

	writes := posts.Group("")
	if m.Limit != nil {
		writes.Use(m.Limit)
	}
	{
		writes.POST("", m.Handler.Create)
		writes.PATCH("/:id", m.Handler.Update)
		writes.POST("/:id/publish", m.Handler.Publish)
		writes.DELETE("/:id", m.Handler.Delete)
	}
}
