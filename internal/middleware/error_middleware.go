package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an application error to its HTTP status and error body.
// Messages and details come from the CustomError when there is one.
func HandleAPIError(c *gin.Context, err error) {
	message, details := describe(err)

	switch {
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		respond(c, http.StatusUnsupportedMediaType,
			dto.NewErrorDetail(dto.ErrorCodeUnsupportedMediaType, orDefault(message, "Unsupported content type")))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, orDefault(message, "Validation failed"))
		if len(details) > 0 {
			detail = detail.WithDetails(details)
		}
		respond(c, http.StatusBadRequest, detail)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, orDefault(message, "Resource not found")))
	case errors.Is(err, apperrors.ErrFileStorage):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("File storage failure")
		respond(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeFileStorageError, orDefault(message, "File storage error")).
				WithSeverity(dto.ErrorSeverityCritical))
	case errors.Is(err, apperrors.ErrDatabase):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Database failure")
		respond(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, orDefault(message, "Database error")).
				WithSeverity(dto.ErrorSeverityCritical))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		respond(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// HandleServiceUnavailable responds 503 for a failed readiness check.
func HandleServiceUnavailable(c *gin.Context, err error) {
	logger.Warn().Err(err).Msg("Health check failed")
	respond(c, http.StatusServiceUnavailable,
		dto.NewErrorDetail(dto.ErrorCodeServiceUnavailable, "Database is unreachable"))
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// describe returns the outermost CustomError's message and details.
func describe(err error) (string, map[string]interface{}) {
	var custom *apperrors.CustomError
	if errors.As(err, &custom) {
		return custom.Message, custom.Details
	}
	return "", nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
