package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/shiftlens/shiftlens/pkg/service/gcs"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

// Exporter holds CLI flags for report export configuration
type Exporter struct {
	bucket string
	prefix string
}

// Flags returns CLI flags for report export configuration
func (e *Exporter) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "export-bucket",
			Usage:       "Cloud Storage bucket for analysis report export (disabled when empty)",
			Sources:     cli.EnvVars("SHIFTLENS_EXPORT_BUCKET"),
			Destination: &e.bucket,
		},
		&cli.StringFlag{
			Name:        "export-prefix",
			Usage:       "Object name prefix for exported reports",
			Value:       "reports",
			Sources:     cli.EnvVars("SHIFTLENS_EXPORT_PREFIX"),
			Destination: &e.prefix,
		},
	}
}

// Configured reports whether export is enabled.
func (e *Exporter) Configured() bool {
	return e.bucket != ""
}

// Configure builds the Cloud Storage exporter. The caller owns Close.
func (e *Exporter) Configure(ctx context.Context) (*gcs.Client, error) {
	if e.bucket == "" {
		return nil, goerr.New("export-bucket is required")
	}

	client, err := gcs.New(ctx, e.bucket, gcs.WithObjectPrefix(e.prefix))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize report exporter")
	}

	logging.Default().Info("Report export enabled", "bucket", e.bucket, "prefix", e.prefix)
	return client, nil
}
