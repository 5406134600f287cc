package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shuvamd5/storefront-admin/internal/session"
)

// AuthGuard 路由守卫
// 未登录（本地会话没有 token）时拦截请求并提示跳转登录页
func AuthGuard(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sess.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":     401,
				"message":  "未登录或会话已过期，请先登录",
				"redirect": "/auth/login",
			})
			return
		}
		c.Next()
	}
}
