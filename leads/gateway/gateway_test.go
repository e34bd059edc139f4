package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"hqd-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.LeadSubmission {
	return models.LeadSubmission{
		Name:          "Aarav Mehta",
		Email:         "aarav@example.com",
		Phone:         "+91 98765 43210",
		EventType:     "Wedding",
		EventDate:     "2026-12-12",
		City:          "Mumbai",
		GuestCount:    "200-300",
		BarType:       "cocktail",
		Message:       "Sangeet night bar",
		SetupInterest: "sangeet-spectacular",
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := New("  ")
	assert.ErrorIs(t, err, ErrBaseURLRequired)

	c, err := New("http://localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.baseURL)
}

func TestSubmitLead_ValidationGate(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.SubmitLead(context.Background(), models.LeadSubmission{
		Name: "", Email: "a@b.com", Phone: "123", EventType: "Wedding",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)
	assert.Zero(t, calls.Load())

	_, err = c.SubmitLead(context.Background(), models.LeadSubmission{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "email", "phone", "event_type"}, verr.Fields)
	assert.Zero(t, calls.Load())
}

func TestSubmitLead_Success(t *testing.T) {
	var calls atomic.Int32
	var got models.LeadSubmission
	var contentType, method, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		method, path = r.Method, r.URL.Path
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"lead_1"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	sub := validSubmission()
	ack, err := c.SubmitLead(context.Background(), sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"lead_1"}`, string(ack))

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/api/leads", path)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, sub, got)
}

func TestSubmitLead_DefaultsBarType(t *testing.T) {
	var got models.LeadSubmission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	sub := validSubmission()
	sub.BarType = ""
	_, err = c.SubmitLead(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBarType, got.BarType)
}

func TestSubmitLead_NonJSONAcknowledgment(t *testing.T) {
	for status, body := range map[int]string{http.StatusNoContent: "", http.StatusOK: "OK"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))

		c, err := New(srv.URL)
		require.NoError(t, err)
		ack, err := c.SubmitLead(context.Background(), validSubmission())
		srv.Close()
		require.NoError(t, err, "status %d", status)
		assert.Equal(t, body, string(ack))
	}
}

func TestSubmitLead_ServerErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	ack, err := c.SubmitLead(context.Background(), validSubmission())
	assert.Nil(t, ack)
	var serr *StatusError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, http.StatusInternalServerError, serr.StatusCode)
	assert.Contains(t, string(serr.Body), "boom")
	assert.Equal(t, int32(1), calls.Load())
}

func TestSubmitLead_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)

	_, err = c.SubmitLead(context.Background(), validSubmission())
	var nerr *NetworkError
	assert.ErrorAs(t, err, &nerr)
}

func TestSubmitLead_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := New(srv.URL, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = c.SubmitLead(context.Background(), validSubmission())
	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"degraded","email_enabled":true,"timestamp":"2026-01-01T00:00:00Z"}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	hs := c.Health(context.Background())
	assert.Equal(t, "degraded", hs.Status)
	assert.True(t, hs.EmailEnabled)
	assert.False(t, hs.Placeholder)
}

func TestHealth_FailuresAreMasked(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer broken.Close()

	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer garbled.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	for _, url := range []string{broken.URL, garbled.URL, downURL} {
		c, err := New(url)
		require.NoError(t, err)
		hs := c.Health(context.Background())
		assert.Equal(t, "healthy", hs.Status, url)
		assert.True(t, hs.Placeholder, url)
	}
}
