package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"hqd-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSubmit(t *testing.T) {
	var got models.LeadSubmission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/leads", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"lead_1","status":"new"}`))
	}))
	defer srv.Close()

	out, err := run(t, "submit", "--backend", srv.URL,
		"--name", "Kabir", "--email", "kabir@example.com", "--phone", "98100", "--event-type", "Sangeet",
		"--setup", "sangeet-spectacular")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "lead_1"`)
	assert.Equal(t, "Kabir", got.Name)
	assert.Equal(t, "both", got.BarType)
	assert.Equal(t, "sangeet-spectacular", got.SetupInterest)
}

func TestSubmit_AcceptsAnySuccessBody(t *testing.T) {
	cases := []struct {
		name   string
		status int
		ctype  string
		body   string
		want   string
	}{
		{"no content", http.StatusNoContent, "", "", "submitted\n"},
		{"plain text", http.StatusOK, "text/plain", "OK", "submitted: OK\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var posts atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				posts.Add(1)
				if tc.ctype != "" {
					w.Header().Set("Content-Type", tc.ctype)
				}
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			out, err := run(t, "submit", "--backend", srv.URL,
				"--name", "Kabir", "--email", "kabir@example.com", "--phone", "98100", "--event-type", "Sangeet")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
			assert.Equal(t, int32(1), posts.Load())
		})
	}
}

func TestSubmit_MissingFields(t *testing.T) {
	_, err := run(t, "submit", "--backend", "http://127.0.0.1:1", "--name", "Kabir")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please fill in: [email phone event_type]")
}

func TestSubmit_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := run(t, "submit", "--backend", srv.URL,
		"--name", "Kabir", "--email", "kabir@example.com", "--phone", "98100", "--event-type", "Sangeet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	out, err := run(t, "health", "--backend", url)
	require.NoError(t, err)
	assert.Contains(t, out, "backend unreachable")
	assert.Contains(t, out, `"status": "healthy"`)
}
