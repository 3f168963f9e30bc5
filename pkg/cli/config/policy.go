package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	domainConfig "github.com/shiftlens/shiftlens/pkg/domain/model/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

// Policy holds the CLI flag for the analysis policy file.
type Policy struct {
	path string
}

// Flags returns CLI flags for analysis policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy",
			Usage:       "Path to analysis policy TOML file (defaults apply when omitted)",
			Sources:     cli.EnvVars("SHIFTLENS_POLICY"),
			Destination: &p.path,
		},
	}
}

// policyFile is the TOML shape of an analysis policy override. Any omitted
// field keeps its default value.
type policyFile struct {
	ChangeWeights struct {
		RoleChange        *int `toml:"role_change"`
		NewAssignment     *int `toml:"new_assignment"`
		RemovedAssignment *int `toml:"removed_assignment"`
	} `toml:"change_weights"`

	Priority struct {
		CriticalScore *int `toml:"critical_score"`
		HighScore     *int `toml:"high_score"`
		MediumScore   *int `toml:"medium_score"`
	} `toml:"priority"`

	Severity struct {
		CriticalRatio *float64 `toml:"critical_ratio"`
		HighRatio     *float64 `toml:"high_ratio"`
		MediumRatio   *float64 `toml:"medium_ratio"`
	} `toml:"severity"`

	HighImpactRating *int `toml:"high_impact_rating"`
}

// Configure loads the analysis policy, starting from defaults and applying
// the TOML override file when one is configured.
func (p *Policy) Configure() (*domainConfig.AnalysisPolicy, error) {
	policy := domainConfig.DefaultAnalysisPolicy()
	if p.path == "" {
		return policy, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", p.path))
	}

	var file policyFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML policy", goerr.V("path", p.path))
	}

	applyInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	applyFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	if file.ChangeWeights.RoleChange != nil {
		policy.ChangeWeights[types.ChangeTypeRoleChange] = *file.ChangeWeights.RoleChange
	}
	if file.ChangeWeights.NewAssignment != nil {
		policy.ChangeWeights[types.ChangeTypeNewAssignment] = *file.ChangeWeights.NewAssignment
	}
	if file.ChangeWeights.RemovedAssignment != nil {
		policy.ChangeWeights[types.ChangeTypeRemovedAssignment] = *file.ChangeWeights.RemovedAssignment
	}

	applyInt(&policy.PriorityCriticalScore, file.Priority.CriticalScore)
	applyInt(&policy.PriorityHighScore, file.Priority.HighScore)
	applyInt(&policy.PriorityMediumScore, file.Priority.MediumScore)

	applyFloat(&policy.SeverityCriticalRatio, file.Severity.CriticalRatio)
	applyFloat(&policy.SeverityHighRatio, file.Severity.HighRatio)
	applyFloat(&policy.SeverityMediumRatio, file.Severity.MediumRatio)

	if file.HighImpactRating != nil {
		policy.HighImpactRating = types.OverallRating(*file.HighImpactRating)
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "policy validation failed", goerr.V("path", p.path))
	}

	logging.Default().Info("Loaded analysis policy override", "path", p.path)
	return policy, nil
}
