package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/aretw0/automat/internal/adapters/http"
	"github.com/aretw0/automat/internal/testutils"
	"github.com/aretw0/automat/pkg/adapters/memory"
	"github.com/aretw0/automat/pkg/domain"
)

func doorTable(t *testing.T) *domain.Table {
	t.Helper()
	table, err := testutils.DoorDefinition().Build()
	require.NoError(t, err)
	return table
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := httpadapter.NewHandler(doorTable(t), memory.NewStore())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestDocsEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Full Documentation", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/docs")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "# State Machine Documentation")
		assert.Contains(t, buf.String(), "```mermaid")
	})

	t.Run("Diagram", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/docs/diagram")
		require.NoError(t, err)
		defer resp.Body.Close()

		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "stateDiagram-v2")
		assert.Contains(t, buf.String(), "[*] --> closed")
	})

	t.Run("Stats", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/stats")
		require.NoError(t, err)

		var stats domain.Statistics
		decodeBody(t, resp, &stats)
		assert.Equal(t, "door", stats.Machine)
		assert.Equal(t, 3, stats.States)
		assert.Equal(t, 4, stats.Transitions)
	})
}

func TestGraphEndpoints(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Reachable", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/graph/reachable?from=open")
		require.NoError(t, err)

		var body struct {
			From      domain.State   `json:"from"`
			Reachable []domain.State `json:"reachable"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, domain.State("open"), body.From)
		assert.ElementsMatch(t, []domain.State{"open", "closed", "locked"}, body.Reachable)
	})

	t.Run("Reachable Unknown State", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/graph/reachable?from=limbo")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Path", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/graph/path?from=open&to=locked")
		require.NoError(t, err)

		var body struct {
			Found bool           `json:"found"`
			Path  []domain.State `json:"path"`
		}
		decodeBody(t, resp, &body)
		assert.True(t, body.Found)
		assert.Equal(t, []domain.State{"open", "closed", "locked"}, body.Path)
	})
}

func TestInstanceLifecycle(t *testing.T) {
	srv := newTestServer(t)

	// Create.
	resp, err := http.Post(srv.URL+"/instances", "application/json", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		ID          string         `json:"id"`
		Current     domain.State   `json:"current"`
		ValidInputs []domain.Input `json:"valid_inputs"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, domain.State("closed"), created.Current)
	assert.Equal(t, []domain.Input{"open_door", "lock"}, created.ValidInputs)

	// List.
	resp, err = http.Get(srv.URL + "/instances")
	require.NoError(t, err)
	var listed struct {
		Instances []string `json:"instances"`
	}
	decodeBody(t, resp, &listed)
	assert.Contains(t, listed.Instances, created.ID)

	// Transition.
	resp, err = http.Post(srv.URL+"/instances/"+created.ID+"/transition",
		"application/json", strings.NewReader(`{"input":"open_door"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var after struct {
		Current domain.State          `json:"current"`
		History []domain.HistoryEntry `json:"history"`
	}
	decodeBody(t, resp, &after)
	assert.Equal(t, domain.State("open"), after.Current)
	require.Len(t, after.History, 1)
	assert.Equal(t, domain.HistoryEntry{From: "closed", Input: "open_door", To: "open"}, after.History[0])

	// Get reflects the persisted state.
	resp, err = http.Get(srv.URL + "/instances/" + created.ID)
	require.NoError(t, err)
	decodeBody(t, resp, &after)
	assert.Equal(t, domain.State("open"), after.Current)

	// Delete.
	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/instances/"+created.ID, nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/instances/" + created.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTransition_Rejected(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/instances", "application/json", nil)
	require.NoError(t, err)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)

	// "unlock" is not accepted in "closed".
	resp, err = http.Post(srv.URL+"/instances/"+created.ID+"/transition",
		"application/json", strings.NewReader(`{"input":"unlock"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Error, "unlock")

	// State is unchanged.
	resp, err = http.Get(srv.URL + "/instances/" + created.ID)
	require.NoError(t, err)
	var current struct {
		Current domain.State `json:"current"`
	}
	decodeBody(t, resp, &current)
	assert.Equal(t, domain.State("closed"), current.Current)
}

func TestTransition_BadRequests(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/instances", "application/json", nil)
	require.NoError(t, err)
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)

	t.Run("Malformed Body", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/instances/"+created.ID+"/transition",
			"application/json", strings.NewReader("{not json"))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing Input", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/instances/"+created.ID+"/transition",
			"application/json", strings.NewReader(`{}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Instance", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/instances/nope/transition",
			"application/json", strings.NewReader(`{"input":"open_door"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
