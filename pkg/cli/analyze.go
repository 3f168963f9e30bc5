package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/shiftlens/shiftlens/pkg/cli/config"
	"github.com/shiftlens/shiftlens/pkg/domain/model"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/usecase"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

func cmdAnalyze() *cli.Command {
	var assessmentID int64
	var repoCfg config.Repository
	var policyCfg config.Policy
	var exporterCfg config.Exporter

	flags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "assessment-id",
			Aliases:     []string{"a"},
			Usage:       "Assessment ID to analyze",
			Required:    true,
			Destination: &assessmentID,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, policyCfg.Flags()...)
	flags = append(flags, exporterCfg.Flags()...)

	return &cli.Command{
		Name:  "analyze",
		Usage: "Run change analysis over an assessment and print the report",
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

			report, err := uc.Analysis.AnalyzeAssessment(ctx, assessmentID)
			if err != nil {
				return goerr.Wrap(err, "analysis failed", goerr.V("assessment_id", assessmentID))
			}

			printReport(report)

			// Export synchronously here: the process exits right after, so
			// the fire-and-forget path the server uses is not an option.
			if exporterCfg.Configured() {
				exporter, err := exporterCfg.Configure(ctx)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize report exporter")
				}
				defer func() {
					if err := exporter.Close(); err != nil {
						logging.Default().Error("failed to close exporter", "error", err.Error())
					}
				}()

				uri, err := exporter.ExportReport(ctx, report)
				if err != nil {
					return goerr.Wrap(err, "failed to export report")
				}
				fmt.Printf("\nReport exported to %s\n", uri)
			}

			return nil
		},
	}
}

func printReport(report *model.AnalysisReport) {
	title := color.New(color.Bold, color.FgCyan)
	title.Printf("Assessment: %s (#%d)\n", report.Assessment.Name, report.Assessment.ID)
	fmt.Printf("Report %s generated at %s\n\n", report.ReportID, report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	s := report.Summary
	fmt.Printf("Processes: %d   High impact: %d   Training required: %d   Severity: %s\n\n",
		s.ProcessCount, s.HighImpactCount, s.TrainingRequired, severityColor(s.Severity)(s.Severity.String()))

	if len(report.Changes) == 0 {
		fmt.Println("No RACI changes detected.")
	} else {
		title.Println("RACI Changes")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PROCESS\tROLE\tAS-IS\tTO-BE\tCHANGE\tRATING\tPRIORITY")
		for _, rec := range report.Changes {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				rec.ProcessCode, rec.Role.Name(), orDash(rec.AsIsValue), orDash(rec.ToBeValue),
				rec.ChangeType, rec.ImpactRating.Int(), priorityColor(rec.Priority)(rec.Priority.String()))
		}
		w.Flush() //nolint:errcheck // stdout
		fmt.Println()
	}

	if len(report.RoleLoads) > 0 {
		title.Println("Role Load")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ROLE\tAS-IS\tTO-BE\tTOTAL\tPROCESSES")
		for _, l := range report.RoleLoads {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				l.RoleName, l.AsIsCount, l.ToBeCount, l.TotalLoad, l.ProcessCount)
		}
		w.Flush() //nolint:errcheck // stdout
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func severityColor(s types.Severity) func(a ...interface{}) string {
	switch s {
	case types.SeverityCritical:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case types.SeverityHigh:
		return color.New(color.FgRed).SprintFunc()
	case types.SeverityMedium:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}

func priorityColor(p types.Priority) func(a ...interface{}) string {
	switch p {
	case types.PriorityCritical:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case types.PriorityHigh:
		return color.New(color.FgRed).SprintFunc()
	case types.PriorityMedium:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgGreen).SprintFunc()
	}
}
