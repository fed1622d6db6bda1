package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

const testPayload = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff" +
	"00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff" +
	":00112233445566778899aabbccddeeff:00112233445566778899aabbccddeeff:abcd"

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}
