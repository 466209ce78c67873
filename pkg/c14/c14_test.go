package c14_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/c14tools/c14put/pkg/c14"
	"github.com/c14tools/c14put/pkg/mulog"
)

func newTestClient(srv *httptest.Server) *c14.Client {
	c := c14.NewClient(srv.URL, "test-token", mulog.Printer{})
	c.PollInterval = time.Millisecond
	return c
}

func TestRequestHeaders(t *testing.T) {
	var gotAuth, gotAgent, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAgent = r.Header.Get("User-Agent")
			gotPath = r.URL.Path
			fmt.Fprint(w, `[]`)
		},
	))
	defer srv.Close()

	_, err := newTestClient(srv).ListSafes()
	require.NoError(t, err)
	require.Equal(t, "Bearer test-token", gotAuth)
	require.Equal(t, c14.UserAgent, gotAgent)
	require.Equal(t, "/storage/c14/safe", gotPath)
}

func TestRemoteErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			fmt.Fprint(w, `{"error": "quota exceeded"}`)
		},
	))
	defer srv.Close()

	_, err := newTestClient(srv).ListSafes()
	require.Error(t, err)
	var rerr *c14.RemoteError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, http.StatusPaymentRequired, rerr.StatusCode)
	require.Equal(t, "quota exceeded", rerr.Message)
}

func TestRemoteErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	))
	defer srv.Close()

	_, err := newTestClient(srv).ListSafes()
	require.Error(t, err)
	var rerr *c14.RemoteError
	require.True(t, errors.As(err, &rerr))
	require.Equal(t, "", rerr.Message)
	require.True(t, strings.Contains(err.Error(), "500"))
}
