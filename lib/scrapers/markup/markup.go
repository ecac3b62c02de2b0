// Package markup scrapes menu pages that only exist as HTML: a day
// indexed table layout, weekday-id sections and date-labeled sections.
// Each page template is described by a small profile so a new
// restaurant of a known shape is a profile entry, not new code.
package markup

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"lunchboard-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/markup")

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	// a menu page that redirects means the restaurant page is gone,
	// following it would scrape some unrelated landing page
	client.SetRedirectPolicy(resty.NoRedirectPolicy())
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/markup/http")

	return &Client{http: client}
}

func (c *Client) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	ctx, span := tracer.Start(ctx, "fetchDocument")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return nil, err
	}
	if !res.IsSuccess() {
		err := fmt.Errorf("bad status: %s", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}
