package httperr

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the detailed error body. Some failure kinds reply with a
// bare {"error": "..."} map instead; clients tolerate both shapes.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Respond classifies err and writes the matching HTTP response. Only the
// named failure kinds are special-cased; anything else becomes a generic 500
// with no internal detail in the body.
func Respond(c *gin.Context, err error) {
	path := c.Request.URL.Path

	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var paramErr *ParamError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})

	case errors.Is(err, ErrMalformedBody):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: "Malformed or missing request body",
			Path:    path,
		})

	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Status:  http.StatusNotFound,
			Message: notFoundErr.Error(),
			Path:    path,
		})

	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Status:  http.StatusForbidden,
			Error:   "Forbidden",
			Message: "Access denied",
			Path:    path,
		})

	case errors.Is(err, ErrNothingToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})

	case errors.As(err, &paramErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  http.StatusBadRequest,
			Error:   "Bad Request",
			Message: paramErr.Error(),
			Path:    path,
		})

	default:
		log.Printf("Unhandled error on %s: %v", path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
