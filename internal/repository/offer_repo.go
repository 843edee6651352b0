package repository

import (
	"context"
	"errors"

	"estateoffice/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrDuplicateKey surfaces a unique-constraint violation on the offer
// idempotency key.
var ErrDuplicateKey = errors.New("duplicate idempotency key")

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) Create(ctx context.Context, o *domain.InvestmentOffer) error {
	err := r.db.WithContext(ctx).Create(o).Error
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}

// isDuplicateKey matches a unique-constraint violation across both backends.
// The sqlite case is checked directly: the gorm sqlite driver cannot read
// modernc error codes, so gorm.ErrDuplicatedKey never fires there.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*domain.InvestmentOffer, error) {
	var o domain.InvestmentOffer
	if tx := r.db.WithContext(ctx).First(&o, id); tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OfferRepository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.InvestmentOffer, error) {
	var o domain.InvestmentOffer
	tx := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&o)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &o, nil
}

func (r *OfferRepository) List(ctx context.Context, status domain.LeadStatus, limit, offset int) ([]domain.InvestmentOffer, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var offers []domain.InvestmentOffer
	tx := q.Find(&offers)
	return offers, tx.Error
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, id int64, status domain.LeadStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.InvestmentOffer{}).
		Where("id = ?", id).
		Update("status", status).Error
}
