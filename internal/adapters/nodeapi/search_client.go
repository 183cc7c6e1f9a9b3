package nodeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/marketplace_client/internal/core/domain"
	portsrepo "github.com/SscSPs/marketplace_client/internal/core/ports/repositories"
	"github.com/go-resty/resty/v2"
)

// SearchClient calls search provider endpoints. Providers are addressed by
// absolute URL, so the client has no base URL.
type SearchClient struct {
	client *resty.Client
}

var _ portsrepo.SearchProviderClient = (*SearchClient)(nil)

// NewSearchClient creates a provider client with the given timeout.
func NewSearchClient(timeout time.Duration) *SearchClient {
	return &SearchClient{client: newRestyClient("", timeout)}
}

type failureBody struct {
	Reason string `json:"reason"`
}

func (c *SearchClient) Search(ctx context.Context, searchURL string) (*domain.SearchResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(searchURL)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &domain.SearchFailure{Reason: err.Error()}
	}

	body := resp.Body()
	if resp.IsError() {
		failure := &domain.SearchFailure{StatusCode: resp.StatusCode()}
		var fb failureBody
		if json.Unmarshal(body, &fb) == nil {
			failure.Reason = fb.Reason
		}
		return nil, failure
	}

	var out domain.SearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &domain.SearchFailure{
			StatusCode: resp.StatusCode(),
			Reason:     fmt.Sprintf("invalid response body: %v", err),
		}
	}
	out.Raw = json.RawMessage(body)
	return &out, nil
}
