package c14_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/c14tools/c14put/pkg/c14"
)

func newSafeListServer(nPosts *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.Method == "POST" {
				*nPosts++
			}
			fmt.Fprint(w, `[
				{"uuid_ref": "S1", "name": "backups"},
				{"uuid_ref": "S2", "name": "scratch"}
			]`)
		},
	))
}

func TestFindSafe(t *testing.T) {
	var nPosts int
	srv := newSafeListServer(&nPosts)
	defer srv.Close()

	safe, err := newTestClient(srv).FindSafe("backups")
	require.NoError(t, err)
	require.Equal(t, "S1", safe.UUIDRef)
	require.Equal(t, "backups", safe.Name)
}

// An unknown safe name fails with `ErrSafeNotFound` without creating
// anything.
func TestFindSafeUnknownName(t *testing.T) {
	var nPosts int
	srv := newSafeListServer(&nPosts)
	defer srv.Close()

	_, err := newTestClient(srv).FindSafe("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, c14.ErrSafeNotFound))
	require.Equal(t, 0, nPosts)
}
