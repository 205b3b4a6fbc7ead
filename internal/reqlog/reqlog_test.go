package reqlog

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRequestRestoresBody(t *testing.T) {
	body := `{"username":"admin","password":"admin123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login?debug=1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := FromRequest(req, "ab12cd34")

	assert.Equal(t, "ab12cd34", rec.RequestID)
	assert.Equal(t, DirectionRequest, rec.Direction)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/auth/login", rec.Path)
	assert.Equal(t, "debug=1", rec.Query)
	assert.Equal(t, body, rec.Body)

	// The body must remain fully readable downstream.
	remaining, err := io.ReadAll(req.Body)
	require.NoError(t, err)
	assert.Equal(t, body, string(remaining))
}

func TestFromRequestSkipsBodyForGet(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := FromRequest(req, "ab12cd34")
	assert.Empty(t, rec.Body)
}

func TestHeaderStringIsSortedAndJoined(t *testing.T) {
	rec := Record{Headers: http.Header{
		"Accept":       {"application/json"},
		"X-Custom":     {"one", "two"},
		"Content-Type": {"application/json"},
	}}

	assert.Equal(t,
		"Accept=application/json, Content-Type=application/json, X-Custom=one;two",
		rec.headerString())
}

func TestRecorderWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	logBuf := &bytes.Buffer{}
	rec, err := NewRecorder(zerolog.New(logBuf), dir)
	require.NoError(t, err)
	defer rec.Close()

	rec.Request(Record{
		RequestID: "ab12cd34",
		Direction: DirectionRequest,
		Method:    http.MethodPost,
		Path:      "/api/users",
		Body:      `{"firstName":"Ada"}`,
	})
	rec.Response(Record{
		RequestID: "ab12cd34",
		Direction: DirectionResponse,
		Method:    http.MethodPost,
		Path:      "/api/users",
		Status:    201,
		Elapsed:   12 * time.Millisecond,
	})

	name := filepath.Join(dir, "api-requests-"+time.Now().Format("2006-01-02")+".log")
	content, err := os.ReadFile(name)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "[REQUEST ab12cd34]")
	assert.Contains(t, text, "Method: POST")
	assert.Contains(t, text, `Body: {"firstName":"Ada"}`)
	assert.Contains(t, text, "[RESPONSE ab12cd34]")
	assert.Contains(t, text, "Status Code: 201")
	assert.Contains(t, text, "Elapsed Time: 12 ms")

	// Structured sink received both records too.
	structured := logBuf.String()
	assert.Contains(t, structured, `"direction":"request"`)
	assert.Contains(t, structured, `"direction":"response"`)
}

func TestDailyFileConcurrentAppends(t *testing.T) {
	dir := t.TempDir()
	df, err := NewDailyFile(dir)
	require.NoError(t, err)
	defer df.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, df.Append("[REQUEST xxxxxxxx]\nMethod: GET\n"))
		}()
	}
	wg.Wait()

	name := filepath.Join(dir, "api-requests-"+time.Now().Format("2006-01-02")+".log")
	content, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, 50, strings.Count(string(content), "[REQUEST xxxxxxxx]"))
}
