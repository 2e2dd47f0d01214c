package httperr

import (
	"github.com/gin-gonic/gin"
)

// Codes shared by middleware; handlers add their own domain codes.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeInternal       = "INTERNAL"
)

// Response is the body of every error reply:
//
//	{"error": {"code": "ACTION_NOT_ALLOWED", "message": "Action not allowed"}, "detail": ...}
type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

type Body struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func New(status int, code, msg string) Response {
	return Response{Status: status, Error: Body{Code: code, Message: msg}}
}

func (r Response) WithDetail(detail any) Response {
	r.Detail = detail
	return r
}

// AbortWithError keeps err on the gin context for the request log and
// writes resp.
func AbortWithError(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: AbortWithError called with nil error")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// Abort writes resp for rejections that have no underlying error, such as a
// missing token.
func Abort(c *gin.Context, resp Response) {
	c.AbortWithStatusJSON(resp.Status, resp)
}
