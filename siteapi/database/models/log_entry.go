package models

import (
	"time"

	"github.com/uptrace/bun"
)

var (
	LogApplications = []string{"bot", "seasonalbot", "site"}
	LogLevels       = []string{"debug", "info", "warning", "error", "critical"}
)

type LogEntry struct {
	bun.BaseModel `bun:"table:api_logentry,alias:le"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Application string    `bun:"application,notnull"`
	LoggerName  string    `bun:"logger_name,notnull"`
	Timestamp   time.Time `bun:"timestamp,notnull"`
	Level       string    `bun:"level,notnull"`
	Module      string    `bun:"module,notnull"`
	Line        int16     `bun:"line,notnull"`
	Message     string    `bun:"message,notnull"`
}
