package gcs

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/utils/safe"
)

// Exporter writes finished analysis reports to an object store.
type Exporter interface {
	ExportReport(ctx context.Context, report *model.AnalysisReport) (string, error)
}

// Client exports reports as JSON objects in a Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ Exporter = (*Client)(nil)

type Option func(*Client)

// WithObjectPrefix prepends a path prefix to every exported object name.
func WithObjectPrefix(prefix string) Option {
	return func(c *Client) {
		c.prefix = prefix
	}
}

func New(ctx context.Context, bucket string, opts ...Option) (*Client, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	c := &Client{
		client: client,
		bucket: bucket,
		prefix: "reports",
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage client")
	}
	return nil
}

// ExportReport writes the report as a JSON object and returns its gs:// URI.
// Object names are keyed by assessment and report ID, so re-running an
// analysis never overwrites an earlier report.
func (c *Client) ExportReport(ctx context.Context, report *model.AnalysisReport) (string, error) {
	if report == nil {
		return "", goerr.New("report is required")
	}

	name := fmt.Sprintf("%s/%d/%s.json", c.prefix, report.Summary.AssessmentID, report.ReportID)

	w := c.client.Bucket(c.bucket).Object(name).NewWriter(ctx)
	w.ContentType = "application/json"

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		safe.Close(ctx, w)
		return "", goerr.Wrap(err, "failed to encode report",
			goerr.V("bucket", c.bucket), goerr.V("object", name))
	}

	if err := w.Close(); err != nil {
		return "", goerr.Wrap(err, "failed to write report object",
			goerr.V("bucket", c.bucket), goerr.V("object", name))
	}

	return fmt.Sprintf("gs://%s/%s", c.bucket, name), nil
}
