package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(42)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	claims, err := ParseSessionToken(token)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
}

func TestSessionToken_Tampered(t *testing.T) {
	token, err := GenerateSessionToken(42)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}

	if _, err := ParseSessionToken(token + "x"); err == nil {
		t.Error("篡改过的令牌不应通过校验")
	}
	if _, err := ParseSessionToken("garbage"); err == nil {
		t.Error("乱码令牌不应通过校验")
	}
}

func TestSessionAuth_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionAuth(), func(c *gin.Context) {
		c.JSON(200, gin.H{"user_id": CurrentUserID(c)})
	})

	// 无 cookie → 404 no session
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("无会话 status = %d, want 404", w.Code)
	}

	// 合法 cookie → 放行并注入用户 id
	token, err := GenerateSessionToken(7)
	if err != nil {
		t.Fatalf("签发令牌失败: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("有会话 status = %d, want 200", w.Code)
	}
	if want := `{"user_id":7}`; w.Body.String() != want {
		t.Errorf("body = %s, want %s", w.Body.String(), want)
	}
}
