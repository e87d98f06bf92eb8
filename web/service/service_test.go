package service

import (
	"path/filepath"
	"testing"

	"github.com/op/go-logging"

	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/logger"
)

func setup(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SRP_LOG_FOLDER", dir)
	logger.InitLogger(logging.DEBUG)

	if err := database.InitDB(filepath.Join(dir, "test.db")); err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		database.CloseDB()
	})
}
