package handlers

import (
	"net/http"

	"booking-client/domain"

	"github.com/gin-gonic/gin"
)

const (
	errorNoticeMs   = 4000
	searchNoticeMs  = 5000
	successNoticeMs = 10000
)

// respondWithError maps the error taxonomy onto a JSON response. Validation
// errors are resolved locally; transport and backend rejections are surfaced
// as transient, retryable conditions carrying the server's message when one
// was present.
func respondWithError(ctx *gin.Context, err error) {
	if validationErr := domain.IsValidationError(err); validationErr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "fail",
			"field":   validationErr.Field,
			"message": validationErr.Message,
			"notice":  domain.NewNotice(domain.NoticeError, validationErr.Message, errorNoticeMs),
		})
		return
	}

	if overlapErr := domain.IsOverlapError(err); overlapErr != nil {
		message := overlapErr.Error()
		ctx.JSON(http.StatusConflict, gin.H{
			"status":  "fail",
			"message": message,
			"notice":  domain.NewNotice(domain.NoticeError, message, errorNoticeMs),
		})
		return
	}

	if backendErr := domain.IsBackendError(err); backendErr != nil {
		status := backendErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		message := backendErr.Error()
		ctx.JSON(status, gin.H{
			"status":  "fail",
			"message": message,
			"notice":  domain.NewNotice(domain.NoticeError, message, errorNoticeMs),
		})
		return
	}

	if transportErr := domain.IsTransportError(err); transportErr != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "fail",
			"message": "Service not available. Try again later.",
			"notice":  domain.NewNotice(domain.NoticeError, "Service not available. Try again later.", errorNoticeMs),
		})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{
		"status":  "fail",
		"message": err.Error(),
		"notice":  domain.NewNotice(domain.NoticeError, err.Error(), errorNoticeMs),
	})
}
