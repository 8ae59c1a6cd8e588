package ioimages_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/ioimages"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	queries []string
}

func (r *recorder) add(q string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, q)
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := slices.Clone(r.queries)
	r.queries = nil
	return res
}

func trefleServer(t *testing.T, rec *recorder) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/plants/search", r.URL.Path)
			assert.Equal(t, "secret", r.URL.Query().Get("token"))
			q := r.URL.Query().Get("q")
			rec.add(q)

			w.Header().Set("Content-Type", "application/json")
			switch q {
			case "Zingiber officinale":
				fmt.Fprint(w, `{"data": [
					{"id": 1, "scientific_name": "Zingiber officinale",
					 "common_name": "ginger", "image_url": null},
					{"id": 2, "scientific_name": "Zingiber officinale",
					 "common_name": "ginger",
					 "image_url": "https://example.org/ginger.jpg"}
				]}`)
			case "Lemon Balm":
				fmt.Fprint(w, `{"data": [{"id": 77,
					"scientific_name": "Melissa officinalis",
					"common_name": "lemon balm",
					"image_url": "https://example.org/balm.jpg"}]}`)
			case "broken":
				fmt.Fprint(w, `{"data": [`)
			case "limited":
				w.WriteHeader(http.StatusTooManyRequests)
			default:
				fmt.Fprint(w, `{"data": []}`)
			}
		}))
	t.Cleanup(srv.Close)
	return srv
}

func newTrefle(url string) *config.ImagesConfig {
	return &config.ImagesConfig{BaseURL: url + "/", Token: "secret", Timeout: 5}
}

func TestTrefleFind(t *testing.T) {
	var rec recorder
	srv := trefleServer(t, &rec)
	lookup := ioimages.NewTrefle(*newTrefle(srv.URL))
	ctx := context.Background()

	cand, err := lookup.Find(ctx, "Zingiber officinale", "Ginger")
	require.NoError(t, err)
	require.NotNil(t, cand)
	assert.Equal(t, "2", cand.Ref)
	assert.Equal(t, "https://example.org/ginger.jpg", cand.ImageURL)
	assert.Equal(t, []string{"Zingiber officinale"}, rec.take())

	cand, err = lookup.Find(ctx, "Melissa officinalis", "Lemon Balm")
	require.NoError(t, err)
	require.NotNil(t, cand)
	assert.Equal(t, "77", cand.Ref)
	assert.Equal(t, []string{"Melissa officinalis", "Lemon Balm"}, rec.take())

	cand, err = lookup.Find(ctx, "Nothing here", "")
	require.NoError(t, err)
	assert.Nil(t, cand)
}

func TestTrefleErrors(t *testing.T) {
	var rec recorder
	srv := trefleServer(t, &rec)
	lookup := ioimages.NewTrefle(*newTrefle(srv.URL))
	ctx := context.Background()

	tests := []struct {
		msg  string
		name string
		code gn.ErrorCode
	}{
		{"bad json", "broken", errcode.ImagesResponseError},
		{"bad status", "limited", errcode.ImagesResponseError},
	}

	for _, v := range tests {
		_, err := lookup.Find(ctx, v.name, "")
		require.Error(t, err, v.msg)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
	}

	srv.Close()
	_, err := lookup.Find(ctx, "Zingiber officinale", "")
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.ImagesRequestError, gnErr.Code)
}
