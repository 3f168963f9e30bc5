package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/shiftlens/shiftlens/pkg/cli/config"
	"github.com/shiftlens/shiftlens/pkg/usecase"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

func cmdRecompute() *cli.Command {
	var assessmentID int64
	var repoCfg config.Repository
	var policyCfg config.Policy

	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "assessment-id",
			Aliases:     []string{"a"},
			Usage:       "Assessment ID to recompute (all assessments when omitted)",
			Destination: &assessmentID,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)

	return &cli.Command{
		Name:  "recompute",
		Usage: "Re-derive stored impact ratings and priorities from sub-ratings",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			policy, err := policyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load analysis policy")
			}

			uc := usecase.New(repo, usecase.WithAnalysisPolicy(policy))

			var updated int
			if assessmentID != 0 {
				updated, err = uc.Recompute.RecomputeAssessment(ctx, assessmentID)
			} else {
				updated, err = uc.Recompute.RecomputeAll(ctx)
			}
			if err != nil {
				return goerr.Wrap(err, "recompute failed")
			}

			fmt.Printf("Recompute finished: %d row(s) updated\n", updated)
			return nil
		},
	}
}
