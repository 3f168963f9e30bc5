package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/shiftlens/shiftlens/pkg/cli/config"
	"github.com/shiftlens/shiftlens/pkg/utils/logging"
)

func TestLoggerConfigure(t *testing.T) {
	orig := logging.Default()
	defer logging.SetDefault(orig)

	closer, err := config.NewLoggerForTest("debug", "json", "stderr").Configure()
	gt.NoError(t, err).Required()
	defer closer()

	gt.NotNil(t, logging.Default())
}

func TestLoggerConfigureFileOutput(t *testing.T) {
	orig := logging.Default()
	defer logging.SetDefault(orig)

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := config.NewLoggerForTest("info", "json", path).Configure()
	gt.NoError(t, err).Required()

	logging.Default().Info("hello")
	closer()

	data, err := os.ReadFile(path)
	gt.NoError(t, err).Required()
	gt.True(t, len(data) > 0)
}

func TestLoggerRejectsInvalidLevel(t *testing.T) {
	_, err := config.NewLoggerForTest("verbose", "console", "stdout").Configure()
	gt.Error(t, err)
}

func TestLoggerRejectsInvalidFormat(t *testing.T) {
	_, err := config.NewLoggerForTest("info", "xml", "stdout").Configure()
	gt.Error(t, err)
}
