package modules

import (
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/oksasatya/go-ddd-blog-api/docs" // swagger docs
)

type DocsModule struct{}

func NewDocsModule() *DocsModule { return &DocsModule{} }

func (m *DocsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json"))))
}
