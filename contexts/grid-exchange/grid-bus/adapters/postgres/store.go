package postgresadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"mostar/contexts/grid-exchange/grid-bus/ports"
	"mostar/internal/shared/events"

	"gorm.io/gorm"
)

type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the bus_events table. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&busEventModel{})
}

func (s *Store) Append(ctx context.Context, event events.Envelope) (events.Envelope, error) {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return events.Envelope{}, err
	}
	row := busEventModel{
		TS:      time.Now().UTC(),
		Topic:   event.Topic,
		Origin:  event.Origin,
		Target:  event.Target,
		Payload: payload,
		Sig:     event.Sig,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return events.Envelope{}, err
	}
	return row.toEnvelope()
}

func (s *Store) History(ctx context.Context, topic string, limit int) ([]events.Envelope, error) {
	query := s.db.WithContext(ctx).Model(&busEventModel{})
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}

	var rows []busEventModel
	if err := query.Order("id DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	// The query walks the log newest first; callers get oldest first.
	out := make([]events.Envelope, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		envelope, err := rows[i].toEnvelope()
		if err != nil {
			return nil, err
		}
		out = append(out, envelope)
	}
	return out, nil
}

func (s *Store) TopicCounts(ctx context.Context, limit int) ([]ports.TopicCount, error) {
	var rows []struct {
		Topic string
		N     int64
	}
	err := s.db.WithContext(ctx).
		Model(&busEventModel{}).
		Select("topic, COUNT(*) AS n").
		Group("topic").
		Order("n DESC").
		Order("topic ASC").
		Limit(limit).
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.TopicCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.TopicCount{Topic: row.Topic, Count: row.N})
	}
	return out, nil
}

type busEventModel struct {
	ID      int64     `gorm:"column:id;primaryKey;autoIncrement"`
	TS      time.Time `gorm:"column:ts"`
	Topic   string    `gorm:"column:topic;index"`
	Origin  string    `gorm:"column:origin"`
	Target  string    `gorm:"column:target"`
	Payload []byte    `gorm:"column:payload;type:jsonb"`
	Sig     string    `gorm:"column:sig"`
}

func (busEventModel) TableName() string {
	return "bus_events"
}

func (m busEventModel) toEnvelope() (events.Envelope, error) {
	envelope := events.Envelope{
		ID:     m.ID,
		TS:     m.TS.UTC(),
		Topic:  m.Topic,
		Origin: m.Origin,
		Target: m.Target,
		Sig:    m.Sig,
	}
	if len(m.Payload) > 0 {
		if err := json.Unmarshal(m.Payload, &envelope.Payload); err != nil {
			return events.Envelope{}, err
		}
	}
	return envelope, nil
}

var _ ports.EventStore = (*Store)(nil)
