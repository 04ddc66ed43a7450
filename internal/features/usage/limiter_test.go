package usage

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLimitSource struct {
	limits []*UsageLimit
	err    error
}

func (f *fakeLimitSource) GetApplicableLimits(uuid.UUID) ([]*UsageLimit, error) {
	return f.limits, f.err
}

type fakeUsageSource struct {
	records []*TokenUsage
	err     error
}

func (f *fakeUsageSource) GetUsageSince(uuid.UUID, string, time.Time) ([]*TokenUsage, error) {
	return f.records, f.err
}

func newTestLimiter(limits []*UsageLimit, records []*TokenUsage) *UsageLimiter {
	limiter := NewUsageLimiter(
		&fakeLimitSource{limits: limits},
		&fakeUsageSource{records: records},
	)
	limiter.now = func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	return limiter
}

func Test_EnforceUsageLimits_UnderCeiling_Allows(t *testing.T) {
	userID := uuid.New()
	limiter := newTestLimiter(
		[]*UsageLimit{{Type: LimitTypeProvider, Target: "openai", UsageLimit: 1000}},
		[]*TokenUsage{{UserID: userID, ModelName: "gpt-4o", ModelProvider: "openai", TotalTokens: 999}},
	)

	aggregates, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelName:     "gpt-4o",
		ModelProvider: "openai",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(999), aggregates.ByProvider["openai"])
}

// The ceiling itself blocks: a user who consumed exactly the limit may not
// make another call.
func Test_EnforceUsageLimits_AtCeiling_Blocks(t *testing.T) {
	userID := uuid.New()
	limiter := newTestLimiter(
		[]*UsageLimit{{Type: LimitTypeProvider, Target: "openai", UsageLimit: 1000}},
		[]*TokenUsage{{UserID: userID, ModelName: "gpt-4o", ModelProvider: "openai", TotalTokens: 1000}},
	)

	_, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelName:     "gpt-4o",
		ModelProvider: "openai",
	})

	var limitErr *LimitExceededError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitTypeProvider, limitErr.LimitType)
	assert.Equal(t, int64(1000), limitErr.Ceiling)
}

func Test_EnforceUsageLimits_UserLimitBoundary(t *testing.T) {
	userID := uuid.New()

	underLimit := newTestLimiter(
		[]*UsageLimit{{Type: LimitTypeUser, Target: userID.String(), UsageLimit: 500}},
		[]*TokenUsage{{UserID: userID, ModelProvider: "openai", TotalTokens: 499}},
	)
	_, err := underLimit.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelProvider: "openai",
	})
	assert.NoError(t, err)

	atLimit := newTestLimiter(
		[]*UsageLimit{{Type: LimitTypeUser, Target: userID.String(), UsageLimit: 500}},
		[]*TokenUsage{{UserID: userID, ModelProvider: "openai", TotalTokens: 500}},
	)
	_, err = atLimit.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelProvider: "openai",
	})
	var limitErr *LimitExceededError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitTypeUser, limitErr.LimitType)
}

func Test_EnforceUsageLimits_MismatchedTarget_Skipped(t *testing.T) {
	userID := uuid.New()
	limiter := newTestLimiter(
		[]*UsageLimit{
			{Type: LimitTypeModel, Target: "gpt-4o-mini", UsageLimit: 10},
			{Type: LimitTypeProvider, Target: "anthropic", UsageLimit: 10},
			{Type: LimitTypeUser, Target: uuid.New().String(), UsageLimit: 10},
		},
		[]*TokenUsage{{UserID: userID, ModelName: "gpt-4o", ModelProvider: "openai", TotalTokens: 5000}},
	)

	_, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelName:     "gpt-4o",
		ModelProvider: "openai",
	})

	assert.NoError(t, err)
}

func Test_EnforceUsageLimits_AgentLimit_OnlyAppliesToThatAgent(t *testing.T) {
	userID := uuid.New()
	agentID := uuid.New()
	limiter := newTestLimiter(
		[]*UsageLimit{{Type: LimitTypeAgent, Target: agentID.String(), UsageLimit: 100}},
		[]*TokenUsage{{UserID: userID, ModelProvider: "openai", AgentID: &agentID, TotalTokens: 100}},
	)

	// Direct call without the agent passes.
	_, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelProvider: "openai",
	})
	assert.NoError(t, err)

	// Same call through the agent is blocked.
	_, err = limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelProvider: "openai",
		AgentID:       &agentID,
	})
	var limitErr *LimitExceededError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitTypeAgent, limitErr.LimitType)
}

// Limits are evaluated in fetch order and the first reached ceiling wins.
func Test_EnforceUsageLimits_FirstViolationInFetchOrderWins(t *testing.T) {
	userID := uuid.New()
	limiter := newTestLimiter(
		[]*UsageLimit{
			{Type: LimitTypeModel, Target: "gpt-4o", UsageLimit: 50},
			{Type: LimitTypeProvider, Target: "openai", UsageLimit: 50},
		},
		[]*TokenUsage{{UserID: userID, ModelName: "gpt-4o", ModelProvider: "openai", TotalTokens: 60}},
	)

	_, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        userID,
		ModelName:     "gpt-4o",
		ModelProvider: "openai",
	})

	var limitErr *LimitExceededError
	assert.ErrorAs(t, err, &limitErr)
	assert.Equal(t, LimitTypeModel, limitErr.LimitType)
}

func Test_EnforceUsageLimits_LimitFetchFailure_PropagatesError(t *testing.T) {
	limiter := NewUsageLimiter(
		&fakeLimitSource{err: errors.New("connection refused")},
		&fakeUsageSource{},
	)

	_, err := limiter.EnforceUsageLimits(&EnforcementInput{
		UserID:        uuid.New(),
		ModelProvider: "openai",
	})

	assert.Error(t, err)
	var limitErr *LimitExceededError
	assert.False(t, errors.As(err, &limitErr))
}

func Test_LimitExceededError_NamesScopeAndCeiling(t *testing.T) {
	err := &LimitExceededError{LimitType: LimitTypeProvider, Ceiling: 1000}
	assert.Equal(
		t,
		"usage limit exceeded for provider: ceiling of 1000 tokens reached",
		err.Error(),
	)
}

func Test_MonthStart(t *testing.T) {
	midMonth := time.Date(2025, time.June, 15, 13, 45, 12, 0, time.UTC)
	assert.Equal(
		t,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		MonthStart(midMonth),
	)

	firstSecond := time.Date(2025, time.June, 1, 0, 0, 0, 1, time.UTC)
	assert.Equal(
		t,
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		MonthStart(firstSecond),
	)
}

func Test_AggregateUsage_BucketsTotalsFourWays(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()
	agentID := uuid.New()

	aggregates := AggregateUsage([]*TokenUsage{
		{UserID: userA, ModelName: "gpt-4o", ModelProvider: "openai", TotalTokens: 100},
		{UserID: userA, ModelName: "gpt-4o", ModelProvider: "openai", AgentID: &agentID, TotalTokens: 50},
		{UserID: userB, ModelName: "claude-sonnet-4", ModelProvider: "anthropic", TotalTokens: 30},
	})

	assert.Equal(t, int64(150), aggregates.ByModel["gpt-4o"])
	assert.Equal(t, int64(150), aggregates.ByProvider["openai"])
	assert.Equal(t, int64(30), aggregates.ByProvider["anthropic"])
	assert.Equal(t, int64(150), aggregates.ByUser[userA.String()])
	assert.Equal(t, int64(50), aggregates.ByAgent[agentID.String()])
	assert.NotContains(t, aggregates.ByAgent, userA.String())
}

func Test_UsageLimitValidate(t *testing.T) {
	valid := &UsageLimit{Type: LimitTypeModel, Target: "gpt-4o", UsageLimit: 100}
	assert.NoError(t, valid.Validate())

	// A zero ceiling is a valid "block everything" limit.
	zeroCeiling := &UsageLimit{Type: LimitTypeModel, Target: "gpt-4o", UsageLimit: 0}
	assert.NoError(t, zeroCeiling.Validate())

	negativeCeiling := &UsageLimit{Type: LimitTypeModel, Target: "gpt-4o", UsageLimit: -1}
	assert.Error(t, negativeCeiling.Validate())

	badProvider := &UsageLimit{Type: LimitTypeProvider, Target: "acme-llm", UsageLimit: 100}
	assert.Error(t, badProvider.Validate())

	globalType := &UsageLimit{Type: LimitTypeGlobal, Target: "", UsageLimit: 100}
	assert.Error(t, globalType.Validate())

	missingTarget := &UsageLimit{Type: LimitTypeUser, Target: "", UsageLimit: 100}
	assert.Error(t, missingTarget.Validate())
}
