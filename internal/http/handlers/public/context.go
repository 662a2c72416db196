package public

import "github.com/gin-gonic/gin"

// ContextKeyUserID 认证中间件写入的用户ID键
const ContextKeyUserID = "user_id"

// getUserID 从上下文取当前用户ID。仅在认证路由组内调用。
func getUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
