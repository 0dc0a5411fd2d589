package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
	"github.com/oksasatya/go-ddd-blog-api/pkg/validation"
)

// writeError maps domain and storage errors onto HTTP statuses.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case entity.IsValidationError(err):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, repository.ErrConflict):
		response.Error[any](c, http.StatusConflict, "request conflicts with existing data", err.Error())
	default:
		if logger != nil {
			logger.WithError(err).WithFields(logrus.Fields{
				"method":     c.Request.Method,
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Error("request failed")
		}
		_ = c.Error(err)
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func invalidPayload(c *gin.Context, err error) {
	response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
}
