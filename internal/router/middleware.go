package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/souq-next/internal/constants"
	"github.com/souq-next/internal/http/handlers/public"
	"github.com/souq-next/internal/http/response"
	"github.com/souq-next/internal/logger"
	"github.com/souq-next/internal/provider"
)

// RequestIDMiddleware 为每个请求生成/透传请求ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(response.ContextKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// CORSMiddleware 跨域处理
func CORSMiddleware(allowOrigins []string) gin.HandlerFunc {
	allowAll := len(allowOrigins) == 0
	allowed := make(map[string]bool, len(allowOrigins))
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			c.Header("Access-Control-Max-Age", "86400")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware 访问日志
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infow("http_request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// UserJWTAuthMiddleware 用户态认证。token 由外部认证服务签发，
// 这里只校验签名与有效期，并确认用户仍然存在且可用。
func UserJWTAuthMiddleware(container *provider.Container) gin.HandlerFunc {
	secret := []byte(container.Config.UserJWT.Secret)
	issuer := container.Config.UserJWT.Issuer
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		parseOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{"HS256"})}
		if issuer != "" {
			parseOpts = append(parseOpts, jwt.WithIssuer(issuer))
		}
		token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, parseOpts...)
		if err != nil || !token.Valid {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		userID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || userID == 0 {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		user, err := container.UserRepo.GetByID(uint(userID))
		if err != nil {
			response.InternalError(c, "internal error")
			c.Abort()
			return
		}
		if user == nil || user.Status != constants.UserStatusActive {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}

		c.Set(public.ContextKeyUserID, uint(userID))
		c.Next()
	}
}
