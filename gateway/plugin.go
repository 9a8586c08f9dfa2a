package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"
	"github.com/pixolin/wpplugin/constants"
	"github.com/pixolin/wpplugin/entity"
	"github.com/pixolin/wpplugin/errors"
)

// SearchPlugins fetches one page of directory matches for the search
// term. A search with no matches is a valid, empty page.
func (g *Gateway) SearchPlugins(ctx context.Context, req *entity.SearchRequest) (*entity.ResultPage, error) {
	params := url.Values{}
	params.Set("action", "query_plugins")
	params.Set("request[search]", req.Term)
	params.Set("request[page]", strconv.Itoa(req.Page))
	params.Set("request[per_page]", strconv.Itoa(entity.PageSize))

	httpReq, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s?%s", GetHost(), params.Encode()), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "building search request")
	}
	httpReq = httpReq.WithContext(ctx)
	httpReq.Header.Set("Accept", "application/json; charset=utf-8")
	httpReq.Header.Set("User-Agent", fmt.Sprintf("wpplugin/%s", constants.Version))

	res, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.SearchFailed
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, errors.SearchFailed
	}

	var page entity.ResultPage
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, errors.MalformedResponse
	}

	return &page, nil
}
