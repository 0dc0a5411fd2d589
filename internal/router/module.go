package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that registers its routes on a RouterGroup
// handed to it by the Registry.
type Module interface {
	Register(rg *gin.RouterGroup)
}
