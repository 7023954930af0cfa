// Package middleware - Test middleware xác thực qua Fiber app.
package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"gki_content/internal/common"
)

// newAuthTestApp dựng app với một route admin được bảo vệ bởi AuthMiddleware.
func newAuthTestApp() *fiber.App {
	app := fiber.New()
	group := app.Group("/admin")
	group.Use(AuthMiddleware())
	group.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("pong")
	})
	return app
}

func decodeErrorBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("Không đọc được response body: %v", err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("Response không phải JSON hợp lệ: %v (body: %s)", err, raw)
	}
	return payload
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Thiếu Authorization header phải trả %d, nhận được %d", common.StatusUnauthorized, resp.StatusCode)
	}
	payload := decodeErrorBody(t, resp.Body)
	if payload["message"] != common.MsgTokenMissing {
		t.Errorf("Mong đợi message %q, nhận được %v", common.MsgTokenMissing, payload["message"])
	}
	if payload["status"] != "error" {
		t.Errorf("Mong đợi status error, nhận được %v", payload["status"])
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app := newAuthTestApp()

	for _, header := range []string{"abc", "Basic abc", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/admin/ping", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test trả lỗi: %v", err)
		}

		if resp.StatusCode != common.StatusUnauthorized {
			t.Errorf("Header %q phải trả %d, nhận được %d", header, common.StatusUnauthorized, resp.StatusCode)
		}
		payload := decodeErrorBody(t, resp.Body)
		resp.Body.Close()
		if payload["message"] != common.MsgTokenInvalid {
			t.Errorf("Header %q mong đợi message %q, nhận được %v", header, common.MsgTokenInvalid, payload["message"])
		}
	}
}

// Token đúng định dạng nhưng không tra được trong database (registry chưa
// đăng ký collection users): request đi hết nhánh tra token với context
// của request và bị chặn với lỗi token không hợp lệ.
func TestAuthMiddlewareUnknownToken(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer khong-ton-tai")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test trả lỗi: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != common.StatusUnauthorized {
		t.Errorf("Token không tra được phải trả %d, nhận được %d", common.StatusUnauthorized, resp.StatusCode)
	}
	payload := decodeErrorBody(t, resp.Body)
	if payload["message"] != common.MsgTokenInvalid {
		t.Errorf("Mong đợi message %q, nhận được %v", common.MsgTokenInvalid, payload["message"])
	}
}
