package usage

import (
	"errors"
	"fmt"
	"time"

	users_enums "chathub-backend/internal/features/users/enums"
	users_models "chathub-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type UsageService struct {
	limitRepository *LimitRepository
	usageRepository *UsageRepository
	limiter         *UsageLimiter
}

func (s *UsageService) GetLimiter() *UsageLimiter {
	return s.limiter
}

// GetLimits lists limit rows. Limits are global, so reads are admin-gated
// like writes. When both a user-typed and a global limit exist for the same
// target, the user-specific one wins and the global row is dropped from the
// response. An optional provider filter narrows provider-typed rows to one
// provider.
func (s *UsageService) GetLimits(
	providerFilter string,
	user *users_models.User,
) (*GetLimitsResponseDTO, error) {
	if user.Role != users_enums.UserRoleAdmin {
		return nil, errors.New("insufficient permissions to view usage limits")
	}

	if providerFilter != "" && !IsRecognizedProvider(providerFilter) {
		return nil, errors.New("unrecognized provider target")
	}

	limits, err := s.limitRepository.GetAllLimits()
	if err != nil {
		return nil, fmt.Errorf("failed to get usage limits: %w", err)
	}

	userTargets := make(map[string]bool)
	for _, limit := range limits {
		if limit.Type == LimitTypeUser {
			userTargets[limit.Target] = true
		}
	}

	filtered := make([]*UsageLimit, 0, len(limits))
	for _, limit := range limits {
		if limit.Type == LimitTypeGlobal && userTargets[limit.Target] {
			continue
		}
		if providerFilter != "" && limit.Type == LimitTypeProvider && limit.Target != providerFilter {
			continue
		}
		filtered = append(filtered, limit)
	}

	return &GetLimitsResponseDTO{Limits: filtered}, nil
}

func (s *UsageService) SaveLimit(
	request *SaveLimitRequestDTO,
	user *users_models.User,
) (*UsageLimit, error) {
	if user.Role != users_enums.UserRoleAdmin {
		return nil, errors.New("insufficient permissions to manage usage limits")
	}

	limit := &UsageLimit{
		Type:       request.Type,
		Target:     request.Target,
		UsageLimit: request.UsageLimit,
	}

	if err := limit.Validate(); err != nil {
		return nil, err
	}

	if err := s.limitRepository.UpsertLimit(limit); err != nil {
		return nil, fmt.Errorf("failed to save usage limit: %w", err)
	}

	return limit, nil
}

func (s *UsageService) DeleteLimit(limitID uuid.UUID, user *users_models.User) error {
	if user.Role != users_enums.UserRoleAdmin {
		return errors.New("insufficient permissions to manage usage limits")
	}

	if err := s.limitRepository.DeleteLimit(limitID); err != nil {
		return fmt.Errorf("failed to delete usage limit: %w", err)
	}

	return nil
}

// RecordUsage appends one immutable usage row. Callers omitting a user id
// record against themselves.
func (s *UsageService) RecordUsage(
	request *RecordUsageRequestDTO,
	caller *users_models.User,
) (*TokenUsage, error) {
	userID := caller.ID
	if request.UserID != nil {
		userID = *request.UserID
	}

	input, output, total := request.Usage.Normalize()

	record := &TokenUsage{
		ID:            uuid.New(),
		UserID:        userID,
		WorkspaceID:   request.WorkspaceID,
		AgentID:       request.AgentID,
		ModelName:     request.ModelName,
		ModelProvider: request.ModelProvider,
		InputTokens:   input,
		OutputTokens:  output,
		TotalTokens:   total,
	}

	if err := s.usageRepository.CreateUsage(record); err != nil {
		return nil, fmt.Errorf("failed to record token usage: %w", err)
	}

	return record, nil
}

func (s *UsageService) GetMonthlyTotalsByUser() (map[uuid.UUID]int64, error) {
	return s.usageRepository.GetMonthlyTotalsByUser(MonthStart(time.Now()))
}

// GetCurrentMonthUsage returns the caller's usage aggregated by model for
// the current calendar month.
func (s *UsageService) GetCurrentMonthUsage(
	user *users_models.User,
) (*GetUsageResponseDTO, error) {
	models, err := s.usageRepository.GetMonthlyUsageByModel(user.ID, MonthStart(time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate token usage: %w", err)
	}

	if models == nil {
		models = []*ModelUsageDTO{}
	}

	return &GetUsageResponseDTO{Models: models}, nil
}
