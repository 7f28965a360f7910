package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classroom-service/internal/models"
	"classroom-service/internal/qr"
	"classroom-service/internal/service"
)

// fail maps service errors to HTTP status codes with the error text as the
// user-facing message.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrBadCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrAlreadyCheckedIn):
		status = http.StatusConflict
	case errors.Is(err, models.ErrCheckinDisabled),
		errors.Is(err, models.ErrCheckinFinished),
		errors.Is(err, service.ErrQuestionHidden):
		status = http.StatusConflict
	case errors.Is(err, qr.ErrBadPayload):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
