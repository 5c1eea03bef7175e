// Package httperr defines the single error body every endpoint returns:
// {"error":{"code":"...","message":"..."}}.
package httperr

import (
	"net/http"

	"entitlement-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
}

func New(status int, code, msg string) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}}
}

func Internal() Response {
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}

// Abort writes r and records cause as a public gin error so the error
// middleware can log it next to the code that went out.
func (r Response) Abort(c *gin.Context, cause error) {
	if cause == nil {
		cause = errs.New(r.Error.Message)
	}
	_ = c.Error(&gin.Error{Err: cause, Type: gin.ErrorTypePublic, Meta: r})
	c.AbortWithStatusJSON(r.Status, r)
}

func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	New(status, code, msg).Abort(c, err)
}
