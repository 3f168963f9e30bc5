package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/cli/config"
	"github.com/shiftlens/shiftlens/pkg/domain/types"
)

func writePolicyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.toml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestPolicyDefaultsWithoutFile(t *testing.T) {
	p := config.NewPolicyForTest("")

	policy, err := p.Configure()
	gt.NoError(t, err).Required()

	gt.Value(t, policy.PriorityCriticalScore).Equal(7)
	gt.Value(t, policy.SeverityHighRatio).Equal(0.3)
	gt.Value(t, policy.ChangeWeight(types.ChangeTypeRoleChange)).Equal(3)
	gt.Value(t, policy.ChangeWeight(types.ChangeTypeRemovedAssignment)).Equal(2)
}

func TestPolicyOverrideFromTOML(t *testing.T) {
	path := writePolicyFile(t, `
high_impact_rating = 3

[change_weights]
removed_assignment = 1

[priority]
critical_score = 8

[severity]
medium_ratio = 0.05
`)

	policy, err := config.NewPolicyForTest(path).Configure()
	gt.NoError(t, err).Required()

	// Overridden values
	gt.Value(t, policy.HighImpactRating).Equal(types.OverallRating(3))
	gt.Value(t, policy.ChangeWeight(types.ChangeTypeRemovedAssignment)).Equal(1)
	gt.Value(t, policy.PriorityCriticalScore).Equal(8)
	gt.Value(t, policy.SeverityMediumRatio).Equal(0.05)

	// Untouched values keep their defaults
	gt.Value(t, policy.ChangeWeight(types.ChangeTypeRoleChange)).Equal(3)
	gt.Value(t, policy.PriorityHighScore).Equal(5)
	gt.Value(t, policy.SeverityCriticalRatio).Equal(0.5)
}

func TestPolicyRejectsInconsistentOverride(t *testing.T) {
	// Critical threshold below high threshold must fail validation.
	path := writePolicyFile(t, `
[priority]
critical_score = 2
`)

	_, err := config.NewPolicyForTest(path).Configure()
	gt.Error(t, err)
}

func TestPolicyRejectsMalformedTOML(t *testing.T) {
	path := writePolicyFile(t, `this is not toml = = =`)

	_, err := config.NewPolicyForTest(path).Configure()
	gt.Error(t, err)
}

func TestPolicyMissingFile(t *testing.T) {
	_, err := config.NewPolicyForTest("/no/such/policy.toml").Configure()
	gt.Error(t, err)
}
