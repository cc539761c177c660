package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestOK_MergesPayload(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		OK(c, gin.H{"value": "x"})
	})

	if w.Code != 200 {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if body["ok"] != true || body["value"] != "x" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestOK_NilPayload(t *testing.T) {
	_, body := record(func(c *gin.Context) {
		OK(c, nil)
	})
	if body["ok"] != true || len(body) != 1 {
		t.Errorf("expected bare success envelope, got %v", body)
	}
}

func TestError_AppErrorStatus(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		Error(c, NewForbidden("Unauthorized"))
	})

	if w.Code != 403 {
		t.Errorf("expected 403, got %d", w.Code)
	}
	if body["ok"] != false || body["error"] != "Unauthorized" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestError_UnknownErrorIs500Verbatim(t *testing.T) {
	w, body := record(func(c *gin.Context) {
		Error(c, errUnknown{})
	})

	if w.Code != 500 {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if body["error"] != "constraint violated: duplicate key" {
		t.Errorf("storage message must pass through verbatim, got %v", body["error"])
	}
}

type errUnknown struct{}

func (errUnknown) Error() string { return "constraint violated: duplicate key" }

func TestStatusHelpers(t *testing.T) {
	tests := []struct {
		name string
		fn   func(c *gin.Context)
		code int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "nope") }, 400},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "nope") }, 401},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "nope") }, 403},
		{"not found", func(c *gin.Context) { NotFound(c, "nope") }, 404},
		{"method not allowed", func(c *gin.Context) { MethodNotAllowed(c) }, 405},
		{"server error", func(c *gin.Context) { ServerError(c, "nope") }, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := record(tt.fn)
			if w.Code != tt.code {
				t.Errorf("expected %d, got %d", tt.code, w.Code)
			}
			if body["ok"] != false {
				t.Errorf("expected ok=false, got %v", body)
			}
		})
	}
}
