package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("UserID = %d, want 42", claims.UserID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.jwt"); err == nil {
		t.Fatal("garbage token parsed")
	}
}

func TestTokenFromRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(header, query string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+query, nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		return c
	}

	if tok, err := TokenFromRequest(newCtx("Bearer abc", "")); err != nil || tok != "abc" {
		t.Fatalf("bearer header: tok=%q err=%v", tok, err)
	}
	if tok, err := TokenFromRequest(newCtx("", "token=xyz")); err != nil || tok != "xyz" {
		t.Fatalf("query fallback: tok=%q err=%v", tok, err)
	}
	if _, err := TokenFromRequest(newCtx("", "")); err != ErrMissingToken {
		t.Fatalf("missing token: err=%v", err)
	}
	if _, err := TokenFromRequest(newCtx("Basic abc", "")); err != ErrInvalidToken {
		t.Fatalf("non-bearer scheme: err=%v", err)
	}
}
