package serializers

import (
	"context"
	"time"

	"github.com/pydis/site-api/siteapi/database/models"
)

type LogEntryRepresentation struct {
	Application string    `json:"application"`
	LoggerName  string    `json:"logger_name"`
	Timestamp   time.Time `json:"timestamp"`
	Level       string    `json:"level"`
	Module      string    `json:"module"`
	Line        int16     `json:"line"`
	Message     string    `json:"message"`
}

type logEntryPayload struct {
	Application *string `json:"application" validate:"required,oneof=bot seasonalbot site"`
	LoggerName  *string `json:"logger_name" validate:"required,notblank,max=100"`
	Timestamp   *string `json:"timestamp"`
	Level       *string `json:"level" validate:"required,oneof=debug info warning error critical"`
	Module      *string `json:"module" validate:"required,notblank,max=100"`
	Line        *int    `json:"line" validate:"required,gte=0,lte=32767"`
	Message     *string `json:"message" validate:"required,notblank"`
}

type LogEntrySerializer struct {
	writer Writer[models.LogEntry]
	now    func() time.Time
}

func NewLogEntrySerializer(writer Writer[models.LogEntry]) *LogEntrySerializer {
	return &LogEntrySerializer{writer: writer, now: time.Now}
}

func (s *LogEntrySerializer) Validate(_ context.Context, data []byte) (*models.LogEntry, error) {
	var p logEntryPayload
	if verrs := decode(data, &p); !verrs.Empty() {
		return nil, verrs
	}

	verrs := checkStruct(&p)
	ts := parseTime(verrs, "timestamp", p.Timestamp)
	if !verrs.Empty() {
		return nil, verrs
	}

	return &models.LogEntry{
		Application: *p.Application,
		LoggerName:  *p.LoggerName,
		Timestamp:   deref(ts, s.now()),
		Level:       *p.Level,
		Module:      *p.Module,
		Line:        int16(*p.Line),
		Message:     *p.Message,
	}, nil
}

func (s *LogEntrySerializer) Represent(_ context.Context, m *models.LogEntry) (any, error) {
	return &LogEntryRepresentation{
		Application: m.Application,
		LoggerName:  m.LoggerName,
		Timestamp:   m.Timestamp,
		Level:       m.Level,
		Module:      m.Module,
		Line:        m.Line,
		Message:     m.Message,
	}, nil
}

func (s *LogEntrySerializer) Create(ctx context.Context, m *models.LogEntry) error {
	return s.writer.Create(ctx, m)
}
