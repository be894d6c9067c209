package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "rw-be-svc/docs"
)

var pathParam = regexp.MustCompile(`:(\w+)`)

func TestSwaggerDocumentsEveryAPIRoute(t *testing.T) {
	s := newTestServer(t, true)

	w := s.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	documented := 0
	for _, route := range s.router.Routes() {
		if !strings.HasPrefix(route.Path, "/api/v1/") {
			continue
		}
		path := pathParam.ReplaceAllString(route.Path, "{$1}")
		ops, ok := doc.Paths[path]
		if assert.Truef(t, ok, "%s is not documented", path) {
			_, ok = ops[strings.ToLower(route.Method)]
			assert.Truef(t, ok, "%s %s is not documented", route.Method, path)
		}
		documented++
	}
	assert.Equal(t, 26, documented)

	for _, name := range []string{"handler.VoteRequest", "response.ComplaintDetailResponse", "utils.APIResponse"} {
		assert.Contains(t, doc.Definitions, name)
	}
	assert.Contains(t, string(doc.Definitions["handler.VoteRequest"]), `"voteType"`)
}
