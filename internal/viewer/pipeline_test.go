package viewer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/terravis/internal/config"
	"github.com/Faultbox/terravis/internal/logger"
)

// initTestLogger routes log output to a file so tests can assert on the
// pipeline diagnostics.
func initTestLogger(t *testing.T) string {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "test.log")
	if err := logger.InitWithFileConfig("debug", logger.FileConfig{Path: logPath}, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	return logPath
}

func TestPrepareMeshFromFile(t *testing.T) {
	logPath := initTestLogger(t)

	dataPath := filepath.Join(t.TempDir(), "elevation.txt")
	data := "3\n0 0 0\n0.05 0 0\n0 0 0.05\n"
	if err := os.WriteFile(dataPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	mesh, err := prepareMesh(config.TerrainConfig{
		DataPath:      dataPath,
		MaxEdgeLength: 0.15,
	})
	if err != nil {
		t.Fatalf("prepareMesh() error = %v", err)
	}
	if got := len(mesh.Vertices); got != 3 {
		t.Errorf("len(Vertices) = %d, want 3", got)
	}

	logger.Sync()
	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logData), "points normalized to [-1, 1]") {
		t.Errorf("log output missing normalization diagnostic:\n%s", logData)
	}
}

func TestPrepareMeshGeneratesMissingDataset(t *testing.T) {
	initTestLogger(t)

	dataPath := filepath.Join(t.TempDir(), "elevation.txt")
	mesh, err := prepareMesh(config.TerrainConfig{
		DataPath:         dataPath,
		MaxEdgeLength:    0.15,
		GenerateFallback: true,
		SampleCount:      50,
		Seed:             1,
	})
	if err != nil {
		t.Fatalf("prepareMesh() error = %v", err)
	}
	if got := len(mesh.Vertices); got != 50 {
		t.Errorf("len(Vertices) = %d, want 50", got)
	}

	// The generated dataset is persisted for the next run.
	if _, err := os.Stat(dataPath); err != nil {
		t.Errorf("generated dataset not written: %v", err)
	}
}

func TestPrepareMeshMissingDatasetNoFallback(t *testing.T) {
	initTestLogger(t)

	_, err := prepareMesh(config.TerrainConfig{
		DataPath:      filepath.Join(t.TempDir(), "absent.txt"),
		MaxEdgeLength: 0.15,
	})
	if err == nil {
		t.Fatal("prepareMesh() error = nil, want load failure")
	}
}
