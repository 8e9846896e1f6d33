// Package fetch downloads remote markdown documents for conversion.
package fetch

import (
	"context"
	"net/http"

	"github.com/samber/oops"
	"resty.dev/v3"
)

// MaxDocumentSize is the largest remote document accepted. Responses above
// it are rejected after the body is read.
const MaxDocumentSize = 10 << 20

type Client struct {
	http *resty.Client
}

func New() *Client {
	return &Client{http: resty.New()}
}

// Document fetches the document at rawURL and returns its body as text.
func (c *Client) Document(ctx context.Context, rawURL string) (string, error) {
	response, err := c.http.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			Wrapf(err, "downloading document")
	}

	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return "", oops.
			Code("DOWNLOAD_FAILED").
			With("url", rawURL).
			With("status", response.StatusCode()).
			Errorf("document URL returned non-success status %d", response.StatusCode())
	}

	body := response.String()
	if len(body) > MaxDocumentSize {
		return "", oops.
			Code("DOCUMENT_TOO_LARGE").
			With("url", rawURL).
			With("size", len(body)).
			Hint("Documents above 10 MiB are rejected").
			Errorf("remote document exceeds %d bytes", MaxDocumentSize)
	}

	return body, nil
}
