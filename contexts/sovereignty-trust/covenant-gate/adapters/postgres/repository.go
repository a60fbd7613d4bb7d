package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	domainerrors "mostar/contexts/sovereignty-trust/covenant-gate/domain/errors"
	"mostar/contexts/sovereignty-trust/covenant-gate/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the actors and trust_marks tables. Idempotent; run once at
// startup before traffic is accepted.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&actorModel{}, &trustMarkModel{})
}

func (r *Repository) UpsertActor(ctx context.Context, actor ports.Actor, now time.Time) (ports.Actor, error) {
	row, err := actorModelFromPort(actor, now)
	if err != nil {
		return ports.Actor{}, err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"public_key", "capabilities", "commitments",
				"policy_hash", "model_fingerprint", "updated_at",
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return ports.Actor{}, err
	}

	var stored actorModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", row.Name).
		First(&stored).
		Error; err != nil {
		return ports.Actor{}, err
	}
	return stored.toPort()
}

func (r *Repository) GetActor(ctx context.Context, name string) (ports.Actor, error) {
	var row actorModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Actor{}, domainerrors.ErrActorNotFound
		}
		return ports.Actor{}, err
	}
	return row.toPort()
}

func (r *Repository) AppendMark(ctx context.Context, mark ports.TrustMark) error {
	row := trustMarkModel{
		MarkID:    mark.MarkID,
		ActorName: mark.ActorName,
		Tier:      mark.Tier,
		Resonance: mark.Resonance,
		OathOK:    mark.OathOK,
		CreatedAt: mark.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrRepositoryInvariantBroke
		}
		return err
	}
	return nil
}

func (r *Repository) LatestMark(ctx context.Context, actorName string) (ports.TrustMark, bool, error) {
	var row trustMarkModel
	err := r.db.WithContext(ctx).
		Where("actor_name = ?", actorName).
		Order("created_at DESC").
		Order("mark_id DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.TrustMark{}, false, nil
		}
		return ports.TrustMark{}, false, err
	}
	return ports.TrustMark{
		MarkID:    row.MarkID,
		ActorName: row.ActorName,
		Tier:      row.Tier,
		Resonance: row.Resonance,
		OathOK:    row.OathOK,
		CreatedAt: row.CreatedAt.UTC(),
	}, true, nil
}

func (r *Repository) TierCounts(ctx context.Context) (ports.TierCounts, error) {
	var rows []struct {
		Tier string
		N    int64
	}
	err := r.db.WithContext(ctx).
		Model(&trustMarkModel{}).
		Select("tier, COUNT(*) AS n").
		Group("tier").
		Scan(&rows).
		Error
	if err != nil {
		return ports.TierCounts{}, err
	}

	var counts ports.TierCounts
	for _, row := range rows {
		switch row.Tier {
		case ports.TierAllied:
			counts.Allied = int(row.N)
		case ports.TierVassal:
			counts.Vassal = int(row.N)
		case ports.TierSubjugated:
			counts.Subjugated = int(row.N)
		case ports.TierExiled:
			counts.Exiled = int(row.N)
		}
	}
	return counts, nil
}

type actorModel struct {
	Name             string    `gorm:"column:name;primaryKey"`
	PublicKey        string    `gorm:"column:public_key"`
	Capabilities     []byte    `gorm:"column:capabilities;type:jsonb"`
	Commitments      []byte    `gorm:"column:commitments;type:jsonb"`
	PolicyHash       string    `gorm:"column:policy_hash"`
	ModelFingerprint string    `gorm:"column:model_fingerprint"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (actorModel) TableName() string {
	return "actors"
}

func actorModelFromPort(actor ports.Actor, now time.Time) (actorModel, error) {
	capabilities, err := json.Marshal(actor.Capabilities)
	if err != nil {
		return actorModel{}, err
	}
	commitments, err := json.Marshal(actor.Commitments)
	if err != nil {
		return actorModel{}, err
	}
	return actorModel{
		Name:             actor.Name,
		PublicKey:        actor.PublicKey,
		Capabilities:     capabilities,
		Commitments:      commitments,
		PolicyHash:       actor.PolicyHash,
		ModelFingerprint: actor.ModelFingerprint,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}, nil
}

func (m actorModel) toPort() (ports.Actor, error) {
	actor := ports.Actor{
		Name:             m.Name,
		PublicKey:        m.PublicKey,
		PolicyHash:       m.PolicyHash,
		ModelFingerprint: m.ModelFingerprint,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
	if len(m.Capabilities) > 0 {
		if err := json.Unmarshal(m.Capabilities, &actor.Capabilities); err != nil {
			return ports.Actor{}, err
		}
	}
	if len(m.Commitments) > 0 {
		if err := json.Unmarshal(m.Commitments, &actor.Commitments); err != nil {
			return ports.Actor{}, err
		}
	}
	return actor, nil
}

type trustMarkModel struct {
	MarkID    string    `gorm:"column:mark_id;primaryKey"`
	ActorName string    `gorm:"column:actor_name;index"`
	Tier      string    `gorm:"column:tier"`
	Resonance float64   `gorm:"column:resonance"`
	OathOK    bool      `gorm:"column:oath_ok"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (trustMarkModel) TableName() string {
	return "trust_marks"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.ActorRepository = (*Repository)(nil)
var _ ports.TrustLedger = (*Repository)(nil)
