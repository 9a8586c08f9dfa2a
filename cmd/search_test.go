package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/pixolin/wpplugin/configs"
	"github.com/pixolin/wpplugin/controller"
	"github.com/pixolin/wpplugin/entity"
	"github.com/pixolin/wpplugin/errors"
	"github.com/stretchr/testify/require"
)

// pluginDirectory fakes the search endpoint with a fixed number of
// matches, sliced into pages the way the live API does.
func pluginDirectory(total int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("request[page]"))
		perPage, _ := strconv.Atoi(r.URL.Query().Get("request[per_page]"))
		if page < 1 {
			page = 1
		}

		pages := (total + perPage - 1) / perPage
		start := (page - 1) * perPage
		stop := start + perPage
		if stop > total {
			stop = total
		}

		plugins := []*entity.Plugin{}
		for i := start; i < stop; i++ {
			plugins = append(plugins, &entity.Plugin{
				Name: fmt.Sprintf("Hello Plugin %d", i+1),
				Slug: fmt.Sprintf("hello-plugin-%d", i+1),
			})
		}

		json.NewEncoder(w).Encode(&entity.ResultPage{
			Info:    entity.SearchInfo{Page: page, Pages: pages, Results: total},
			Plugins: plugins,
		})
	}))
}

func testHandler(t *testing.T, srv *httptest.Server, inputs ...string) *Handler {
	t.Helper()
	prev, had := os.LookupEnv("WPPLUGIN_API_URL")
	os.Setenv("WPPLUGIN_API_URL", srv.URL)
	t.Cleanup(func() {
		if had {
			os.Setenv("WPPLUGIN_API_URL", prev)
		} else {
			os.Unsetenv("WPPLUGIN_API_URL")
		}
	})

	i := 0
	return &Handler{
		ctrl: controller.New(),
		cfg:  configs.New(),
		prompt: func(hasMore bool) (string, error) {
			if i >= len(inputs) {
				return "q", nil
			}
			input := inputs[i]
			i++
			return input, nil
		},
	}
}

func TestSelectPluginPagesThroughResults(t *testing.T) {
	srv := pluginDirectory(23)
	defer srv.Close()

	// page 1 shows 1-10, "n" shows 11-20, "n" shows 21-23,
	// "2" picks the second plugin on that page: record 22
	h := testHandler(t, srv, "n", "n", "2")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.NotNil(t, plugin)
	require.Equal(t, "hello-plugin-22", plugin.Slug)
}

func TestSelectPluginFirstPage(t *testing.T) {
	srv := pluginDirectory(23)
	defer srv.Close()

	h := testHandler(t, srv, "7")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hello-plugin-7", plugin.Slug)
}

func TestSelectPluginEmptyInputPicksFirstMatch(t *testing.T) {
	srv := pluginDirectory(23)
	defer srv.Close()

	h := testHandler(t, srv, "")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hello-plugin-1", plugin.Slug)
}

func TestSelectPluginQuitSelectsNothing(t *testing.T) {
	srv := pluginDirectory(23)
	defer srv.Close()

	h := testHandler(t, srv, "q")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.Nil(t, plugin)
}

func TestSelectPluginInvalidInputReprompts(t *testing.T) {
	srv := pluginDirectory(23)
	defer srv.Close()

	// garbage, out-of-range index, then a valid pick on the same page
	h := testHandler(t, srv, "wat", "11", "5")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hello-plugin-5", plugin.Slug)
}

func TestSelectPluginNoMoreResultsKeepsPage(t *testing.T) {
	srv := pluginDirectory(5)
	defer srv.Close()

	// "n" past the last page must not move, "3" still picks from page 1
	h := testHandler(t, srv, "n", "3")

	plugin, err := h.selectPlugin(context.Background(), "hello")
	require.NoError(t, err)
	require.Equal(t, "hello-plugin-3", plugin.Slug)
}

func TestSelectPluginNoResults(t *testing.T) {
	srv := pluginDirectory(0)
	defer srv.Close()

	h := testHandler(t, srv)

	plugin, err := h.selectPlugin(context.Background(), "nosuchplugin")
	require.NoError(t, err)
	require.Nil(t, plugin)
}

func TestSelectPluginSearchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	h := testHandler(t, srv)

	_, err := h.selectPlugin(context.Background(), "hello")
	require.Equal(t, errors.SearchFailed, err)
}
