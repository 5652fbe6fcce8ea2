package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRateLimiterBurstThenDeny(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request beyond burst should be denied")
	}
	// a different client has its own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("separate client should not share the bucket")
	}
}

func authTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret, logger), func(c *gin.Context) {
		id, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user": id.(primitive.ObjectID).Hex()})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	r := authTestRouter(secret)
	userId := primitive.NewObjectID()

	token, err := helpers.SignToken(userId.Hex(), secret, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// valid bearer token passes and exposes the user id
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	// missing token is rejected
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for missing token", w.Code)
	}

	// token signed with another secret is rejected
	badToken, err := helpers.SignToken(userId.Hex(), "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+badToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for bad signature", w.Code)
	}

	// expired token is rejected
	expired, err := helpers.SignToken(userId.Hex(), secret, -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 for expired token", w.Code)
	}
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	const secret = "test-secret"
	r := authTestRouter(secret)

	token, err := helpers.SignToken(primitive.NewObjectID().Hex(), secret, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 via cookie: %s", w.Code, w.Body.String())
	}
}
