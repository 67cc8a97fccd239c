package handlers

import (
	"errors"
	"net/http"

	requestSvc "github.com/Souvikgooooo/ThrivePro/services/request"
	"github.com/Souvikgooooo/ThrivePro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps the service-level error taxonomy onto the uniform
// fail envelope: Validation -> 400, NotFound -> 404, Forbidden -> 403.
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr requestSvc.ValidationError
		notFoundErr   requestSvc.NotFoundError
		forbiddenErr  requestSvc.ForbiddenError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONFail(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.JSONFail(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &forbiddenErr):
		utils.JSONFail(c, http.StatusForbidden, forbiddenErr.Message)
	default:
		utils.GetLogger().Error("unexpected service error", zap.Error(err))
		utils.JSONFail(c, http.StatusInternalServerError, "something went wrong, please try again later")
	}
}
