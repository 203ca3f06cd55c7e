package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Message   string       `json:"message"`
	Code      ErrCode      `json:"code"`
	Errors    []FieldError `json:"errors,omitempty"`
	RequestID string       `json:"requestId"`
}

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SuccessResult is the `{success: true}` acknowledgement body.
type SuccessResult struct {
	Success bool `json:"success"`
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success sends body as-is with the given status code.
func Success(c *gin.Context, statusCode int, body interface{}) {
	c.JSON(statusCode, body)
}

// OK sends the `{success: true}` acknowledgement.
func OK(c *gin.Context, statusCode int) {
	c.JSON(statusCode, SuccessResult{Success: true})
}

// Fail sends an error response with an error code and no field-level details.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, buildError(c, code, nil))
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields []FieldError) {
	c.JSON(statusCode, buildError(c, code, fields))
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, buildError(c, code, nil))
}

func buildError(c *gin.Context, code ErrCode, fields []FieldError) ErrorBody {
	return ErrorBody{
		Message:   GetMessage(code),
		Code:      code,
		Errors:    fields,
		RequestID: RequestID(c),
	}
}
