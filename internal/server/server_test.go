package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/string-analyzer/internal/analyzer"
	"github.com/rcliao/string-analyzer/internal/model"
	"github.com/rcliao/string-analyzer/internal/store"
)

func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ts := httptest.NewServer(New(st, nil, opts).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, target, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func create(t *testing.T, ts *httptest.Server, value string) *http.Response {
	t.Helper()
	b, err := json.Marshal(map[string]string{"value": value})
	require.NoError(t, err)
	return do(t, http.MethodPost, ts.URL+"/strings", string(b))
}

func pathFor(ts *httptest.Server, value string) string {
	return ts.URL + "/strings/" + url.PathEscape(value)
}

func TestCreateAndGet(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := create(t, ts, "Racecar")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var created model.StringRecord
	decode(t, resp, &created)
	assert.Equal(t, analyzer.Hash("Racecar"), created.ID)
	assert.Equal(t, "Racecar", created.Value)
	assert.Equal(t, analyzer.Analyze("Racecar"), created.Properties)
	assert.False(t, created.CreatedAt.IsZero())

	resp = do(t, http.MethodGet, pathFor(ts, "Racecar"), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.StringRecord
	decode(t, resp, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCreateWireFormat(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := create(t, ts, "abc")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var raw map[string]interface{}
	decode(t, resp, &raw)
	assert.Contains(t, raw, "id")
	assert.Contains(t, raw, "value")
	assert.Contains(t, raw, "created_at")
	props, ok := raw["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"length", "is_palindrome", "unique_characters", "word_count", "sha256_hash", "character_frequency_map"} {
		assert.Contains(t, props, key)
	}
}

func TestCreateValueWithSlashAndSpaces(t *testing.T) {
	ts := newTestServer(t, Options{})

	value := "a/b c?d"
	require.Equal(t, http.StatusCreated, create(t, ts, value).StatusCode)

	resp := do(t, http.MethodGet, pathFor(ts, value), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.StringRecord
	decode(t, resp, &got)
	assert.Equal(t, value, got.Value)
}

func TestCreateDuplicate(t *testing.T) {
	ts := newTestServer(t, Options{})

	require.Equal(t, http.StatusCreated, create(t, ts, "hello").StatusCode)
	resp := create(t, ts, "hello")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "string already exists in the system", body["error"])
}

func TestCreateValidation(t *testing.T) {
	ts := newTestServer(t, Options{})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed json", `{"value":`, http.StatusBadRequest},
		{"not an object", `["hello"]`, http.StatusBadRequest},
		{"missing value", `{}`, http.StatusBadRequest},
		{"number value", `{"value": 42}`, http.StatusUnprocessableEntity},
		{"null value", `{"value": null}`, http.StatusUnprocessableEntity},
		{"array value", `{"value": ["a"]}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, ts.URL+"/strings", tt.body)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}

	// Nothing was stored by the rejected requests.
	var list store.ListResult
	decode(t, do(t, http.MethodGet, ts.URL+"/strings", ""), &list)
	assert.Equal(t, 0, list.Count)
}

func TestGetNotFound(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := do(t, http.MethodGet, pathFor(ts, "missing"), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDelete(t *testing.T) {
	ts := newTestServer(t, Options{})

	create(t, ts, "bye")
	resp := do(t, http.MethodDelete, pathFor(ts, "bye"), "")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Equal(t, http.StatusNotFound, do(t, http.MethodGet, pathFor(ts, "bye"), "").StatusCode)
	assert.Equal(t, http.StatusNotFound, do(t, http.MethodDelete, pathFor(ts, "bye"), "").StatusCode)
}

func TestList(t *testing.T) {
	ts := newTestServer(t, Options{})

	for _, v := range []string{"racecar", "hello world", "noon"} {
		require.Equal(t, http.StatusCreated, create(t, ts, v).StatusCode)
	}

	resp := do(t, http.MethodGet, ts.URL+"/strings?is_palindrome=true&min_length=5", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var raw struct {
		Data           []model.StringRecord   `json:"data"`
		Count          int                    `json:"count"`
		FiltersApplied map[string]interface{} `json:"filters_applied"`
	}
	decode(t, resp, &raw)
	require.Equal(t, 1, raw.Count)
	assert.Equal(t, "racecar", raw.Data[0].Value)
	assert.Equal(t, map[string]interface{}{"is_palindrome": true, "min_length": float64(5)}, raw.FiltersApplied)
}

func TestListEmptyIsArray(t *testing.T) {
	ts := newTestServer(t, Options{})

	var raw map[string]interface{}
	decode(t, do(t, http.MethodGet, ts.URL+"/strings", ""), &raw)
	assert.Equal(t, []interface{}{}, raw["data"])
	assert.Equal(t, map[string]interface{}{}, raw["filters_applied"])
}

func TestListBadParams(t *testing.T) {
	ts := newTestServer(t, Options{})

	for _, q := range []string{
		"contains_character=ab",
		"contains_character=",
		"is_palindrome=maybe",
		"min_length=short",
		"word_count=1.5",
	} {
		resp := do(t, http.MethodGet, ts.URL+"/strings?"+q, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestNaturalLanguage(t *testing.T) {
	ts := newTestServer(t, Options{})

	create(t, ts, "zebra")
	create(t, ts, "lion")

	q := url.Values{"query": {"strings containing the letter z"}}
	resp := do(t, http.MethodGet, ts.URL+"/strings/filter-by-natural-language?"+q.Encode(), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res store.NaturalLanguageResult
	decode(t, resp, &res)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "zebra", res.Records[0].Value)
	assert.Equal(t, "strings containing the letter z", res.Query.Original)
	require.NotNil(t, res.Query.ParsedFilters.ContainsCharacter)
	assert.Equal(t, "z", *res.Query.ParsedFilters.ContainsCharacter)
}

func TestNaturalLanguageUnparseable(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := do(t, http.MethodGet, ts.URL+"/strings/filter-by-natural-language?query=gibberish", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, ts.URL+"/strings/filter-by-natural-language", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := do(t, http.MethodGet, ts.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRateLimit(t *testing.T) {
	ts := newTestServer(t, Options{RequestsPerSecond: 0.001, Burst: 2})

	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/health", "").StatusCode)
	assert.Equal(t, http.StatusOK, do(t, http.MethodGet, ts.URL+"/health", "").StatusCode)
	assert.Equal(t, http.StatusTooManyRequests, do(t, http.MethodGet, ts.URL+"/health", "").StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, Options{})

	resp := do(t, http.MethodPut, ts.URL+"/strings", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestValueShadowedByNaturalLanguageRoute(t *testing.T) {
	ts := newTestServer(t, Options{})

	value := "filter-by-natural-language"
	require.Equal(t, http.StatusCreated, create(t, ts, value).StatusCode)

	// GET resolves to the natural-language route, which requires a query.
	assert.Equal(t, http.StatusBadRequest, do(t, http.MethodGet, pathFor(ts, value), "").StatusCode)

	var list store.ListResult
	decode(t, do(t, http.MethodGet, ts.URL+"/strings?word_count=1", ""), &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, value, list.Records[0].Value)

	// DELETE has no competing route.
	assert.Equal(t, http.StatusNoContent, do(t, http.MethodDelete, pathFor(ts, value), "").StatusCode)
}

func TestDotValueIsListedButNotAddressable(t *testing.T) {
	ts := newTestServer(t, Options{})

	require.Equal(t, http.StatusCreated, create(t, ts, ".").StatusCode)

	var list store.ListResult
	decode(t, do(t, http.MethodGet, ts.URL+"/strings?contains_character=.", ""), &list)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, ".", list.Records[0].Value)

	// The mux cleans "/strings/." and redirects to "/strings" before any value handler runs.
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		req, err := http.NewRequest(method, pathFor(ts, "."), nil)
		require.NoError(t, err)
		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode, method)
		assert.Equal(t, "/strings", resp.Header.Get("Location"), method)
	}
}
