package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"cinefront/internal/httputil"
	"cinefront/internal/media"
)

// getJSON performs a single GET against the catalog and decodes the body into target.
// There is no retry: one attempt per call.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, target any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.apiKey)

	req, err := httputil.NewJSONRequest(ctx, httputil.Endpoint(c.baseURL, path, params))
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return stripQuery(path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return httputil.DecodeJSON(resp, target)
}

// stripQuery drops the request URL (and with it the api_key) from transport errors.
func stripQuery(path string, err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %w", urlErr.Op, path, urlErr.Err)
	}
	return err
}

// fetchList runs a list query and normalizes its results. Failures are
// logged and reported as an empty list.
func (c *Client) fetchList(ctx context.Context, op, path string, params url.Values, fallback media.Kind) []media.Record {
	var response listResponse
	if err := c.getJSON(ctx, path, params, &response); err != nil {
		c.log.Warn("catalog request failed", "op", op, "path", path, "error", err)
		return []media.Record{}
	}

	records := make([]media.Record, 0, len(response.Results))
	for _, item := range response.Results {
		records = append(records, item.normalize(fallback))
	}

	c.log.Debug("catalog request", "op", op, "path", path, "results", len(records))
	return records
}
