package response

import (
	"github.com/gin-gonic/gin"

	"github.com/giftlane/souvenirs-backend/internal/platform/apierr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func Error(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// FromError classifies err through the apierr mapping and writes the
// envelope with the matching status code.
func FromError(c *gin.Context, err error) {
	ae := apierr.FromKind(err)
	if ae == nil {
		return
	}
	Error(c, ae.Status, ae.Code, err)
}
