package usage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LimitExceededError reports which ceiling was reached. The message names
// the limit scope for user display.
type LimitExceededError struct {
	LimitType LimitType
	Ceiling   int64
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("usage limit exceeded for %s: ceiling of %d tokens reached", e.LimitType, e.Ceiling)
}

// EnforcementInput identifies the call about to be made against a provider.
type EnforcementInput struct {
	UserID        uuid.UUID
	ModelName     string
	ModelProvider string
	AgentID       *uuid.UUID
}

// Aggregates holds current-month token totals bucketed four ways. Returned
// to the caller on success for introspection.
type Aggregates struct {
	ByModel    map[string]int64
	ByProvider map[string]int64
	ByUser     map[string]int64
	ByAgent    map[string]int64
}

type LimitSource interface {
	GetApplicableLimits(userID uuid.UUID) ([]*UsageLimit, error)
}

type UsageSource interface {
	GetUsageSince(userID uuid.UUID, modelProvider string, since time.Time) ([]*TokenUsage, error)
}

type UsageLimiter struct {
	limitSource LimitSource
	usageSource UsageSource
	now         func() time.Time
}

func NewUsageLimiter(limitSource LimitSource, usageSource UsageSource) *UsageLimiter {
	return &UsageLimiter{limitSource, usageSource, time.Now}
}

// EnforceUsageLimits aggregates the user's current-month consumption and
// rejects the call if any applicable ceiling is already reached. The check
// and the later usage record are separate operations: concurrent requests
// can both pass before either records, so transient overshoot is possible.
// This is best-effort metering, not accounting.
func (l *UsageLimiter) EnforceUsageLimits(input *EnforcementInput) (*Aggregates, error) {
	limits, err := l.limitSource.GetApplicableLimits(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch usage limits: %w", err)
	}

	monthStart := MonthStart(l.now())

	records, err := l.usageSource.GetUsageSince(input.UserID, input.ModelProvider, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token usage: %w", err)
	}

	aggregates := AggregateUsage(records)

	if err := CheckLimits(limits, aggregates, input); err != nil {
		return nil, err
	}

	return aggregates, nil
}

// MonthStart computes the start of the calendar month containing t, in t's
// location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AggregateUsage buckets total_tokens by model, provider, user, and agent.
func AggregateUsage(records []*TokenUsage) *Aggregates {
	aggregates := &Aggregates{
		ByModel:    make(map[string]int64),
		ByProvider: make(map[string]int64),
		ByUser:     make(map[string]int64),
		ByAgent:    make(map[string]int64),
	}

	for _, record := range records {
		aggregates.ByModel[record.ModelName] += record.TotalTokens
		aggregates.ByProvider[record.ModelProvider] += record.TotalTokens
		aggregates.ByUser[record.UserID.String()] += record.TotalTokens

		if record.AgentID != nil {
			aggregates.ByAgent[record.AgentID.String()] += record.TotalTokens
		}
	}

	return aggregates
}

// CheckLimits evaluates limits in fetch order; the first one whose bucket
// has reached its ceiling wins. A limit whose target does not match the
// current call context is skipped. Reaching the ceiling blocks: the
// comparison is used >= limit.
func CheckLimits(limits []*UsageLimit, aggregates *Aggregates, input *EnforcementInput) error {
	for _, limit := range limits {
		var used int64
		switch limit.Type {
		case LimitTypeModel:
			if limit.Target != input.ModelName {
				continue
			}
			used = aggregates.ByModel[limit.Target]
		case LimitTypeProvider:
			if limit.Target != input.ModelProvider {
				continue
			}
			used = aggregates.ByProvider[limit.Target]
		case LimitTypeUser:
			if limit.Target != input.UserID.String() {
				continue
			}
			used = aggregates.ByUser[input.UserID.String()]
		case LimitTypeAgent:
			if input.AgentID == nil || limit.Target != input.AgentID.String() {
				continue
			}
			used = aggregates.ByAgent[input.AgentID.String()]
		default:
			continue
		}

		if used >= limit.UsageLimit {
			return &LimitExceededError{LimitType: limit.Type, Ceiling: limit.UsageLimit}
		}
	}

	return nil
}
