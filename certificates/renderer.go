package certificates

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Renderer converts certificate markup into a PDF document. The production
// implementation calls an external HTML-to-PDF service; tests swap in fakes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// HTTPRenderer renders documents through a remote render service that accepts
// HTML and responds with PDF bytes.
type HTTPRenderer struct {
	client *resty.Client
	url    string
}

// NewHTTPRenderer builds a renderer client with an explicit request timeout;
// the render service is network-bound and must not hang the request cycle.
func NewHTTPRenderer(url string, timeout time.Duration) *HTTPRenderer {
	client := resty.New().SetTimeout(timeout)
	return &HTTPRenderer{client: client, url: url}
}

func (r *HTTPRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "text/html").
		SetHeader("Accept", "application/pdf").
		SetBody(html).
		Post(r.url)
	if err != nil {
		return nil, fmt.Errorf("render request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("render service returned %d: %s", resp.StatusCode(), resp.String())
	}

	pdf := resp.Body()
	if len(pdf) == 0 {
		return nil, fmt.Errorf("render service returned an empty document")
	}
	return pdf, nil
}
