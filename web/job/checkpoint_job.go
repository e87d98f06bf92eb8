package job

import (
	"github.com/starrep/starrep/database"
	"github.com/starrep/starrep/logger"
)

// CheckpointJob periodically flushes the sqlite WAL back into the main
// database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

// Run implements the cron Job interface.
func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint job err:", err)
	}
}
