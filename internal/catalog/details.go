package catalog

import (
	"context"
	"fmt"

	"cinefront/internal/media"
)

// Details fetches a single movie or series. The boolean is false when the
// lookup failed for any reason.
func (c *Client) Details(ctx context.Context, id int, kind media.Kind) (media.Record, bool) {
	if !kind.IsMedia() {
		c.log.Warn("catalog request skipped", "op", "details", "id", id, "kind", kind.String())
		return media.Record{}, false
	}

	path := fmt.Sprintf("/%s/%d", kind.Path(), id)

	var item rawRecord
	if err := c.getJSON(ctx, path, nil, &item); err != nil {
		c.log.Warn("catalog request failed", "op", "details", "path", path, "error", err)
		return media.Record{}, false
	}
	if item.ID == 0 {
		c.log.Warn("catalog request failed", "op", "details", "path", path, "error", "payload has no id")
		return media.Record{}, false
	}

	// Detail payloads never carry media_type; the requested kind is authoritative.
	item.MediaType = ""
	return item.normalize(kind), true
}
