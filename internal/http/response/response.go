package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body 统一响应体
type Body struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	RequestID  string      `json:"request_id,omitempty"`
	Data       interface{} `json:"data,omitempty"`
}

// ContextKeyRequestID 请求ID在 gin 上下文中的键
const ContextKeyRequestID = "request_id"

func attachRequestID(c *gin.Context, body *Body) {
	if id, ok := c.Get(ContextKeyRequestID); ok {
		if s, ok := id.(string); ok {
			body.RequestID = s
		}
	}
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	body := Body{StatusCode: CodeSuccess, Msg: "ok", Data: data}
	attachRequestID(c, &body)
	c.JSON(http.StatusOK, body)
}

// Error 错误响应。httpStatus 为传输层状态，code 为业务码。
func Error(c *gin.Context, httpStatus, code int, msg string) {
	body := Body{StatusCode: code, Msg: msg}
	attachRequestID(c, &body)
	c.JSON(httpStatus, body)
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, msg)
}

// Unauthorized 未认证
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, msg)
}

// NotFound 资源不存在
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, CodeNotFound, msg)
}

// Conflict 状态冲突
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, CodeConflict, msg)
}

// RateLimited 触发限流
func RateLimited(c *gin.Context, msg string) {
	Error(c, http.StatusTooManyRequests, CodeRateLimited, msg)
}

// InternalError 服务端错误
func InternalError(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, CodeInternalError, msg)
}
