package db

import (
	"os"
	"path/filepath"
	"testing"

	"iotdef.xyz/agro-dashboard-service/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	testPath := filepath.Join(wd, "test.db")
	t.Setenv(common.EnvKeyDashDbPath, testPath)
	defer func() { _ = os.Remove(testPath) }()

	conn, err := openForTest(UseDialector(TypeFile, ""))
	if err != nil {
		t.Fatalf("Failed to open file database: %v", err)
	}
	sqlDB, _ := conn.DB()
	defer sqlDB.Close()

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
