package usage

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type LimitType string

const (
	LimitTypeGlobal   LimitType = "global"
	LimitTypeProvider LimitType = "provider"
	LimitTypeModel    LimitType = "model"
	LimitTypeUser     LimitType = "user"
	LimitTypeAgent    LimitType = "agent"
)

// Limit types accepted through the limits API. Global rows exist only as
// legacy data; new limits are always scoped.
var writableLimitTypes = []LimitType{
	LimitTypeModel,
	LimitTypeUser,
	LimitTypeAgent,
	LimitTypeProvider,
}

func IsWritableLimitType(limitType LimitType) bool {
	for _, t := range writableLimitTypes {
		if t == limitType {
			return true
		}
	}
	return false
}

var recognizedProviders = []string{"openai", "anthropic", "gemini", "google", "groq", "mistral"}

func IsRecognizedProvider(provider string) bool {
	for _, p := range recognizedProviders {
		if p == provider {
			return true
		}
	}
	return false
}

// UsageLimit is a token ceiling. Target is a provider name, model id,
// user id, or agent id depending on Type; empty for global. Reaching the
// ceiling blocks further usage.
type UsageLimit struct {
	ID         uuid.UUID `json:"id"         gorm:"column:id"`
	Type       LimitType `json:"type"       gorm:"column:type"`
	Target     string    `json:"target"     gorm:"column:target"`
	UsageLimit int64     `json:"usageLimit" gorm:"column:usage_limit"`
	CreatedAt  time.Time `json:"createdAt"  gorm:"column:created_at"`
}

func (UsageLimit) TableName() string {
	return "usage_limits"
}

func (l *UsageLimit) Validate() error {
	if !IsWritableLimitType(l.Type) {
		return errors.New("invalid limit type")
	}
	if l.Type == LimitTypeProvider && !IsRecognizedProvider(l.Target) {
		return errors.New("unrecognized provider target")
	}
	if l.Target == "" {
		return errors.New("limit target is required")
	}
	if l.UsageLimit < 0 {
		return errors.New("usage limit must be non-negative")
	}
	return nil
}

// TokenUsage is an append-only event written after a completed chat turn.
// Rows are never updated; the current-month sum of TotalTokens per scope is
// the "used" quantity compared against limits.
type TokenUsage struct {
	ID            uuid.UUID  `json:"id"            gorm:"column:id"`
	UserID        uuid.UUID  `json:"userId"        gorm:"column:user_id"`
	WorkspaceID   *uuid.UUID `json:"workspaceId"   gorm:"column:workspace_id"`
	AgentID       *uuid.UUID `json:"agentId"       gorm:"column:agent_id"`
	ModelName     string     `json:"modelName"     gorm:"column:model_name"`
	ModelProvider string     `json:"modelProvider" gorm:"column:model_provider"`
	InputTokens   int64      `json:"inputTokens"   gorm:"column:input_tokens"`
	OutputTokens  int64      `json:"outputTokens"  gorm:"column:output_tokens"`
	TotalTokens   int64      `json:"totalTokens"   gorm:"column:total_tokens"`
	CreatedAt     time.Time  `json:"createdAt"     gorm:"column:created_at"`
}

func (TokenUsage) TableName() string {
	return "token_usage"
}
