package middleware

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== 会话配置 ====================

const (
	// SessionCookieName 会话 cookie 名，前端依赖
	SessionCookieName = "furima_session"

	sessionTTL    = 30 * 24 * time.Hour
	ctxKeyUserID  = "session_user_id"
	defaultSecret = "furima-session-secret-change-in-production"
)

var sessionSecret = func() string {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return v
	}
	return defaultSecret
}()

// ==================== Claims 定义 ====================

// SessionClaims 会话声明
type SessionClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

// GenerateSessionToken 签发会话令牌（登录模块与测试使用）
func GenerateSessionToken(userID int64) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(sessionSecret))
}

// ParseSessionToken 校验会话令牌
func ParseSessionToken(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(sessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}

// ==================== 中间件 ====================

// SessionAuth 会话鉴权
// 无会话按 404 返回 {"error":"no session"}，不是 401——前端契约如此
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "no session"})
			return
		}
		claims, err := ParseSessionToken(cookie)
		if err != nil || claims.UserID == 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "no session"})
			return
		}
		c.Set(ctxKeyUserID, claims.UserID)
		c.Next()
	}
}

// CurrentUserID 取出会话用户 id，仅在 SessionAuth 之后可用
func CurrentUserID(c *gin.Context) int64 {
	if v, ok := c.Get(ctxKeyUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
