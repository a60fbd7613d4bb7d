package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "mostar/contexts/grid-exchange/soul-registry/domain/errors"
	"mostar/contexts/grid-exchange/soul-registry/ports"

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

// Migrate creates the soulprints table. Idempotent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&soulprintModel{})
}

func (r *Repository) Upsert(ctx context.Context, soulprint ports.Soulprint, now time.Time) (ports.Soulprint, error) {
	row := soulprintModel{
		Slug:             soulprint.Slug,
		DisplayName:      soulprint.DisplayName,
		PublicKey:        soulprint.PublicKey,
		ProvenanceSHA256: soulprint.ProvenanceSHA256,
		Active:           soulprint.Active,
		CreatedAt:        now.UTC(),
		UpdatedAt:        now.UTC(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "public_key", "provenance_sha256",
				"active", "updated_at",
			}),
		}).
		Create(&row).
		Error
	if err != nil {
		return ports.Soulprint{}, err
	}

	var stored soulprintModel
	if err := r.db.WithContext(ctx).
		Where("slug = ?", row.Slug).
		First(&stored).
		Error; err != nil {
		return ports.Soulprint{}, err
	}
	return stored.toPort(), nil
}

func (r *Repository) Get(ctx context.Context, slug string) (ports.Soulprint, error) {
	var row soulprintModel
	err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Soulprint{}, domainerrors.ErrSoulprintNotFound
		}
		return ports.Soulprint{}, err
	}
	return row.toPort(), nil
}

func (r *Repository) List(ctx context.Context) ([]ports.Soulprint, error) {
	var rows []soulprintModel
	err := r.db.WithContext(ctx).
		Order("slug ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}

	out := make([]ports.Soulprint, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toPort())
	}
	return out, nil
}

type soulprintModel struct {
	Slug             string    `gorm:"column:slug;primaryKey"`
	DisplayName      string    `gorm:"column:display_name"`
	PublicKey        string    `gorm:"column:public_key"`
	ProvenanceSHA256 string    `gorm:"column:provenance_sha256"`
	Active           bool      `gorm:"column:active"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (soulprintModel) TableName() string {
	return "soulprints"
}

func (m soulprintModel) toPort() ports.Soulprint {
	return ports.Soulprint{
		Slug:             m.Slug,
		DisplayName:      m.DisplayName,
		PublicKey:        m.PublicKey,
		ProvenanceSHA256: m.ProvenanceSHA256,
		Active:           m.Active,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

var _ ports.SoulprintRepository = (*Repository)(nil)
