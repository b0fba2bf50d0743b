package random

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoRandomString/GoRandomString/internal/config"
	"github.com/GoRandomString/GoRandomString/internal/generator"
	"github.com/GoRandomString/GoRandomString/internal/metrics"
	"github.com/GoRandomString/GoRandomString/internal/secret"
	"github.com/GoRandomString/GoRandomString/internal/web/handler"
)

// setupTestApp creates a fiber app with the random handler and the default config.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app, _ := setupTestAppWithRegistry(t)

	return app
}

func setupTestAppWithRegistry(t *testing.T) (*fiber.App, *prometheus.Registry) {
	t.Helper()

	cfg := config.Default()
	cfg.Generator.MaxCount = 5
	cfg.Generator.MaxHashCount = 2
	cfg.Generator.MaxLength = 64

	app := fiber.New()
	reg := prometheus.NewRegistry()

	service := &Service{}
	service.Init(app, &handler.Deps{
		Config:  &cfg,
		Metrics: metrics.NewRecorder(reg),
	})

	return app, reg
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, body
}

func get(t *testing.T, app *fiber.App, query url.Values) (int, []byte) {
	t.Helper()

	return doRequest(t, app, httptest.NewRequest(http.MethodGet, Path+"?"+query.Encode(), nil))
}

func post(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return doRequest(t, app, req)
}

func decodeResponse(t *testing.T, body []byte) Response {
	t.Helper()

	var resp Response
	require.NoError(t, json.Unmarshal(body, &resp), string(body))

	return resp
}

func decodeError(t *testing.T, body []byte) handler.ErrorResponse {
	t.Helper()

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp), string(body))

	return resp
}

func assertValuesFrom(t *testing.T, values []string, length int, allowed string) {
	t.Helper()

	for _, v := range values {
		assert.Equal(t, length, utf8.RuneCountInString(v))

		for _, r := range v {
			assert.True(t, strings.ContainsRune(allowed, r), "unexpected %q in %q", r, v)
		}
	}
}

func TestService_Get(t *testing.T) {
	app := setupTestApp(t)

	status, body := get(t, app, url.Values{"characters": {"abc"}, "length": {"5"}})
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Length)
	assert.Equal(t, 3, resp.CharsetSize)
	require.Len(t, resp.Values, 1)
	assertValuesFrom(t, resp.Values, 5, "abc")
	assert.Empty(t, resp.Hashes)
}

func TestService_Get_Defaults(t *testing.T) {
	app := setupTestApp(t)

	status, body := get(t, app, url.Values{"preset": {"hex"}})
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	assert.Equal(t, generator.StdLen, resp.Length)
	assert.Equal(t, 16, resp.CharsetSize)
	assertValuesFrom(t, resp.Values, generator.StdLen, "0123456789abcdef")
}

func TestService_Get_KeepDuplicates(t *testing.T) {
	app := setupTestApp(t)

	status, body := get(t, app, url.Values{
		"characters":       {"aaa"},
		"length":           {"8"},
		"ignoreDuplicates": {"false"},
		"count":            {"3"},
	})
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	assert.Equal(t, 3, resp.CharsetSize)
	assert.Equal(t, []string{"aaaaaaaa", "aaaaaaaa", "aaaaaaaa"}, resp.Values)
}

func TestService_Get_Errors(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name       string
		query      url.Values
		wantStatus int
		wantKind   string
	}{
		{"zero length", url.Values{"characters": {"abc"}, "length": {"0"}}, fiber.StatusBadRequest, generator.KindInvalidLength},
		{"length before charset", url.Values{"length": {"-1"}}, fiber.StatusBadRequest, generator.KindInvalidLength},
		{"empty charset", url.Values{"characters": {""}, "length": {"4"}}, fiber.StatusBadRequest, generator.KindInvalidCharset},
		{"whitespace charset", url.Values{"characters": {"   "}}, fiber.StatusBadRequest, generator.KindInvalidCharset},
		{"single char", url.Values{"characters": {"aaaa"}}, fiber.StatusBadRequest, generator.KindInsufficientCharsetSize},
		{"unknown preset", url.Values{"preset": {"klingon"}}, fiber.StatusBadRequest, generator.KindUnknownPreset},
		{"length not a number", url.Values{"characters": {"ab"}, "length": {"ten"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"count not a number", url.Values{"characters": {"ab"}, "count": {"x"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"bad boolean", url.Values{"characters": {"ab"}, "ignoreDuplicates": {"maybe"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"length above limit", url.Values{"characters": {"ab"}, "length": {"65"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"count above limit", url.Values{"characters": {"ab"}, "count": {"6"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"negative count", url.Values{"characters": {"ab"}, "count": {"-1"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"unknown hash", url.Values{"characters": {"ab"}, "hash": {"md5"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
		{"hash count above limit", url.Values{"characters": {"ab"}, "count": {"3"}, "hash": {"argon2id"}}, fiber.StatusBadRequest, handler.KindInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.query)
			assert.Equal(t, tt.wantStatus, status, string(body))

			resp := decodeError(t, body)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantKind, resp.Kind)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestService_Get_ValidationFields(t *testing.T) {
	app := setupTestApp(t)

	status, body := get(t, app, url.Values{"characters": {"ab"}, "hash": {"sha1"}})
	require.Equal(t, fiber.StatusBadRequest, status)

	resp := decodeError(t, body)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "Hash", resp.Fields[0].Field)
	assert.Equal(t, "oneof", resp.Fields[0].Tag)
}

func TestService_Post(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, `{"characters":"xyzxyz","length":12,"count":2}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	assert.Equal(t, 3, resp.CharsetSize)
	require.Len(t, resp.Values, 2)
	assertValuesFrom(t, resp.Values, 12, "xyz")
}

func TestService_Post_Hash(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, `{"preset":"alphanumeric","length":10,"hash":"argon2id"}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	require.Len(t, resp.Values, 1)
	require.Len(t, resp.Hashes, 1)

	ok, err := secret.Verify(resp.Values[0], resp.Hashes[0])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_Post_Errors(t *testing.T) {
	app := setupTestApp(t)

	tests := []struct {
		name     string
		body     string
		wantKind string
	}{
		{"invalid json", `{"characters":`, handler.KindInvalidRequest},
		{"explicit zero length", `{"characters":"abc","length":0}`, generator.KindInvalidLength},
		{"empty charset", `{"characters":"","length":3}`, generator.KindInvalidCharset},
		{"duplicates only", `{"characters":"zz","ignoreDuplicates":true}`, generator.KindInsufficientCharsetSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := post(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status, string(body))
			assert.Equal(t, tt.wantKind, decodeError(t, body).Kind)
		})
	}
}

func TestService_Get_DefaultPreset(t *testing.T) {
	app := setupTestApp(t)

	status, body := get(t, app, url.Values{"length": {"20"}})
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	assert.Equal(t, len(generator.StdChars), resp.CharsetSize)
	assertValuesFrom(t, resp.Values, 20, generator.StdChars)
}

func TestService_Post_DefaultPreset(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, `{"count":2}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	require.Len(t, resp.Values, 2)
	assertValuesFrom(t, resp.Values, generator.StdLen, generator.StdChars)
}

func TestService_Post_BcryptValueTooLong(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"two byte runes", `{"characters":"αβ","length":40,"hash":"bcrypt"}`},
		{"widest rune counts", `{"characters":"a€","length":25,"hash":"bcrypt"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)

			status, body := post(t, app, tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status, string(body))

			resp := decodeError(t, body)
			assert.Equal(t, handler.KindInvalidRequest, resp.Kind)
			assert.Contains(t, resp.Message, "too long")
		})
	}
}

func TestService_Post_BcryptAtLimit(t *testing.T) {
	app := setupTestApp(t)

	status, body := post(t, app, `{"characters":"αβ","length":36,"hash":"bcrypt"}`)
	require.Equal(t, fiber.StatusOK, status, string(body))

	resp := decodeResponse(t, body)
	require.Len(t, resp.Hashes, 1)

	ok, err := secret.Verify(resp.Values[0], resp.Hashes[0])
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_RejectionsAreRecorded(t *testing.T) {
	app, reg := setupTestAppWithRegistry(t)

	status, _ := get(t, app, url.Values{"characters": {"ab"}, "count": {"6"}})
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = post(t, app, `{"characters":"αβ","length":40,"hash":"bcrypt"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = get(t, app, url.Values{"characters": {"a"}})
	require.Equal(t, fiber.StatusBadRequest, status)

	expected := `
# HELP randomstring_generation_errors_total Number of failed generations, by error kind.
# TYPE randomstring_generation_errors_total counter
randomstring_generation_errors_total{kind="insufficient_charset_size",source="http"} 1
randomstring_generation_errors_total{kind="invalid_request",source="http"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "randomstring_generation_errors_total"))
}
