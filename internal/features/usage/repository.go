package usage

import (
	"time"

	"chathub-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LimitRepository struct{}

// GetApplicableLimits fetches limits that may concern the user: user- and
// provider-typed limits plus anything targeting the user id directly. The
// filter is deliberately broad; precise matching happens during checking.
func (r *LimitRepository) GetApplicableLimits(userID uuid.UUID) ([]*UsageLimit, error) {
	var limits []*UsageLimit

	err := storage.GetDb().
		Where("type IN ? OR target = ?", []LimitType{LimitTypeUser, LimitTypeProvider}, userID.String()).
		Order("created_at ASC").
		Find(&limits).Error

	return limits, err
}

func (r *LimitRepository) GetAllLimits() ([]*UsageLimit, error) {
	var limits []*UsageLimit

	err := storage.GetDb().Order("created_at ASC").Find(&limits).Error

	return limits, err
}

// UpsertLimit creates or replaces the limit keyed by (type, target).
func (r *LimitRepository) UpsertLimit(limit *UsageLimit) error {
	var existing UsageLimit

	err := storage.GetDb().
		Where("type = ? AND target = ?", limit.Type, limit.Target).
		First(&existing).Error

	if err == nil {
		existing.UsageLimit = limit.UsageLimit
		*limit = existing
		return storage.GetDb().Save(&existing).Error
	}

	if err != gorm.ErrRecordNotFound {
		return err
	}

	if limit.ID == uuid.Nil {
		limit.ID = uuid.New()
	}

	if limit.CreatedAt.IsZero() {
		limit.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(limit).Error
}

func (r *LimitRepository) DeleteLimit(limitID uuid.UUID) error {
	return storage.GetDb().Delete(&UsageLimit{}, limitID).Error
}

type UsageRepository struct{}

func (r *UsageRepository) CreateUsage(record *TokenUsage) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(record).Error
}

// GetUsageSince returns the user's usage rows for a provider created at or
// after the given time.
func (r *UsageRepository) GetUsageSince(
	userID uuid.UUID,
	modelProvider string,
	since time.Time,
) ([]*TokenUsage, error) {
	var records []*TokenUsage

	err := storage.GetDb().
		Where("user_id = ? AND model_provider = ? AND created_at >= ?", userID, modelProvider, since).
		Order("created_at ASC").
		Find(&records).Error

	return records, err
}

// GetMonthlyTotalsByUser sums current-period total_tokens per user, for
// the admin analytics listing.
func (r *UsageRepository) GetMonthlyTotalsByUser(since time.Time) (map[uuid.UUID]int64, error) {
	var rows []struct {
		UserID      uuid.UUID `db:"user_id"`
		TotalTokens int64     `db:"total_tokens"`
	}

	err := storage.GetSqlxDb().Select(&rows, `
		SELECT user_id, COALESCE(SUM(total_tokens), 0) AS total_tokens
		FROM token_usage
		WHERE created_at >= $1
		GROUP BY user_id`,
		since,
	)
	if err != nil {
		return nil, err
	}

	totals := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		totals[row.UserID] = row.TotalTokens
	}

	return totals, nil
}

// GetMonthlyUsageByModel aggregates the user's current-month usage per
// model with a raw query on the sqlx handle.
func (r *UsageRepository) GetMonthlyUsageByModel(
	userID uuid.UUID,
	since time.Time,
) ([]*ModelUsageDTO, error) {
	var models []*ModelUsageDTO

	err := storage.GetSqlxDb().Select(&models, `
		SELECT
			model_name,
			model_provider,
			COALESCE(SUM(input_tokens), 0)  AS input_tokens,
			COALESCE(SUM(output_tokens), 0) AS output_tokens,
			COALESCE(SUM(total_tokens), 0)  AS total_tokens
		FROM token_usage
		WHERE user_id = $1 AND created_at >= $2
		GROUP BY model_name, model_provider
		ORDER BY total_tokens DESC`,
		userID, since,
	)

	return models, err
}
