package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
)

// UserModule wires user HTTP handlers into routes under /v1/users.
// Writes pass through the limiter; reads are not limited.
type UserModule struct {
	Handler *handlers.UserHandler
	Limit   gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, limit gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Limit: limit}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	users := rg.Group("/v1/users")
	{
		users.GET("", m.Handler.List)
		users.GET("/search", m.Handler.Search)
		users.GET("/:id", m.Handler.Get)
	}

	writes := users.Group("")
	if m.Limit != nil {
		writes.Use(m.Limit)
	}
	{
		writes.POST("", m.Handler.Create)
		writes.PATCH("/:id", m.Handler.Update)
		writes.DELETE("/:id", m.Handler.Delete)
	}
}
