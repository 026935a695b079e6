package httpds

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/Dolat-Hamza/healf/internal/errs"
)

// Remote is a datasource.Source that fetches a CSV export over HTTP with the
// client's retry policy.
type Remote struct {
	client *Client
	url    string
}

// NewRemote wraps client and url into a source. A nil client gets a default
// one.
func NewRemote(client *Client, url string) *Remote {
	if client == nil {
		client = NewClient(Config{})
	}
	return &Remote{client: client, url: url}
}

// Name is the URL-derived dataset label.
func (r *Remote) Name() string { return DatasetNameFromURL(r.url) }

// Open performs the GET and hands back the response body. Transport
// failures and bad statuses come back as catalog errors so callers can
// classify them as retryable network problems versus final rejections.
func (r *Remote) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := r.client.Get(ctx, r.url, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.CSV("request timed out fetching "+r.url, errs.CodeTimeout)
		}
		return nil, errs.CSV("failed to fetch CSV from "+r.url+": "+err.Error(), errs.CodeNetworkError)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		_ = resp.Body.Close()
		return nil, errs.CSV("unexpected status "+resp.Status+" fetching "+r.url, errs.CodeNetworkError)
	}
	return resp.Body, nil
}
