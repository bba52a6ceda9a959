package server

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/hofkit/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondWithError renders err. An *apperrors.AppError anywhere in the chain
// supplies the status and body; anything else becomes INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	appErr := apperrors.Wrap(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data. A body that cannot be encoded
// is reported as INTERNAL_ERROR instead of an empty 200.
func RespondOK(c *gin.Context, data any) {
	body, err := json.Marshal(DataResponse{Data: data})
	if err != nil {
		RespondWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
