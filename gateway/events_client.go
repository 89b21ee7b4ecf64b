package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"eventbook/entity"
)

type EventsClient struct {
	core *Client
}

func NewEventsClient(core *Client) EventsClient {
	return EventsClient{core: core}
}

// List fetches the catalog filtered by free-text search and category.
// entity.CategoryAll (or empty) means no category filter; an empty result
// set is valid, not an error.
func (c EventsClient) List(ctx context.Context, search string, category entity.Category) ([]entity.EventSummary, error) {
	query := url.Values{}
	if s := strings.TrimSpace(search); s != "" {
		query.Set("search", s)
	}
	if category != "" && category != entity.CategoryAll {
		query.Set("category", string(category))
	}

	path := "/events"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var events []entity.EventSummary
	if err := c.core.do(ctx, http.MethodGet, path, "", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
