package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func serve(h gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestSuccess(t *testing.T) {
	w := serve(func(c *gin.Context) { Success(c, gin.H{"name": "Velo"}) })

	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if w.Code != http.StatusOK || body.Code != 0 || body.Message != "success" {
		t.Errorf("Unexpected envelope: %d %+v", w.Code, body)
	}
	if body.Data["name"] != "Velo" {
		t.Errorf("Expected data.name Velo, got %q", body.Data["name"])
	}
}

func TestErrorHidesCause(t *testing.T) {
	w := serve(func(c *gin.Context) {
		BadGateway(c, "failed to load", errors.New("dial tcp: refused"))
	})

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if w.Code != http.StatusBadGateway || body.Code != http.StatusBadGateway {
		t.Errorf("Expected 502, got %d / %d", w.Code, body.Code)
	}
	if body.Message != "failed to load" {
		t.Errorf("Expected message 'failed to load', got %q", body.Message)
	}
	if body.Data != nil {
		t.Errorf("Expected no data, got %v", body.Data)
	}
}
