package greeter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BRAVO68WEB/greeter/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGreeting_OK(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	require.NoError(t, checkGreeting(context.Background(), ts.Client(), ts.URL+"/"))
}

func TestCheckGreeting_WrongStatus(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	err := checkGreeting(context.Background(), ts.Client(), ts.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestCheckGreeting_WrongBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"hello"}`))
	}))
	defer ts.Close()

	err := checkGreeting(context.Background(), ts.Client(), ts.URL+"/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected body")
}

func TestCheckGreeting_Unreachable(t *testing.T) {
	ts := httptest.NewServer(server.Handler())
	url := ts.URL + "/"
	ts.Close()

	err := checkGreeting(context.Background(), http.DefaultClient, url)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reach server")
}

func TestHandleHealth_URLFlag(t *testing.T) {
	t.Setenv("GREETER_SERVER", "http://127.0.0.1:1")
	ts := httptest.NewServer(server.Handler())
	defer ts.Close()

	assert.NoError(t, handleHealth(context.Background(), ts.URL, time.Second))
	assert.Error(t, handleHealth(context.Background(), "", time.Second))
}
