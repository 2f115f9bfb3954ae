package web

import "github.com/gin-gonic/gin"

// ErrorResponse is the error body of every non-public endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable code, a message and the request ID.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// WriteError aborts the request with an ErrorResponse.
func WriteError(c *gin.Context, status int, code, message string) {
	reqID, _ := c.Get(RequestIDKey)
	id, _ := reqID.(string)

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			RequestID: id,
		},
	})
}
