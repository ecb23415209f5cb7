package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
	"simple-ecommerce/services"
)

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError maps the domain error taxonomy onto HTTP statuses and
// the error envelope. Anything unrecognized is a 500: fatal to the
// request, not the process.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var stockErr *services.InsufficientStockError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &stockErr),
		errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, repositories.ErrOTPUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Success: false,
			Message: "Password reset is temporarily unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

// imageURL builds an absolute URL for a stored image from the request
// host. Images already offloaded to a remote host pass through.
func imageURL(c *gin.Context, image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http") {
		return image
	}
	scheme := "https"
	if c.Request.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + c.Request.Host + "/uploads/" + image
}

func withImageURL(c *gin.Context, p *models.Product) {
	if p != nil {
		p.ImageURL = imageURL(c, p.Image)
	}
}
