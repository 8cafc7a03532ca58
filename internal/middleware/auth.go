package middleware

import (
	"mdsml_gateway/internal/util"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey   = "access_token"
	subjectKey = "subject"
)

// AuthMiddleware 提取 Bearer token 并透传给上游后端。
// 签名校验是后端的职责，这里只在本地解析过期时间，
// 明显过期的 token 不再浪费一次上游调用。
func AuthMiddleware() gin.HandlerFunc {
	parser := jwt.NewParser()

	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		subject := ""
		if token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{}); err == nil {
			if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil && exp.Before(time.Now()) {
				util.Error(c, 401, "token expired")
				c.Abort()
				return
			}
			if sub, err := token.Claims.GetSubject(); err == nil {
				subject = sub
			}
		}
		if subject == "" {
			// 非 JWT 或没有 sub 时退回 token 本身作为会话标识
			subject = tokenString
		}

		c.Set(tokenKey, tokenString)
		c.Set(subjectKey, subject)
		c.Next()
	}
}

// GetToken 当前请求携带的 Bearer token
func GetToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

// GetSubject 当前请求的用户标识，用于隔离进度会话和笔记
func GetSubject(c *gin.Context) string {
	return c.GetString(subjectKey)
}
