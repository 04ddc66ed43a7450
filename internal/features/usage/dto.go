package usage

import (
	"github.com/google/uuid"
)

// UsageTokensDTO accepts both snake_case and camelCase token field names.
// Missing fields default to 0; a missing total defaults to input + output.
type UsageTokensDTO struct {
	InputTokens      *int64 `json:"input_tokens"`
	OutputTokens     *int64 `json:"output_tokens"`
	TotalTokens      *int64 `json:"total_tokens"`
	PromptTokens     *int64 `json:"promptTokens"`
	CompletionTokens *int64 `json:"completionTokens"`
	TotalTokensCamel *int64 `json:"totalTokens"`
}

// Normalize resolves the accepted aliases into concrete token counts.
func (d *UsageTokensDTO) Normalize() (input, output, total int64) {
	input = firstNonNil(d.InputTokens, d.PromptTokens)
	output = firstNonNil(d.OutputTokens, d.CompletionTokens)

	if d.TotalTokens != nil {
		total = *d.TotalTokens
	} else if d.TotalTokensCamel != nil {
		total = *d.TotalTokensCamel
	} else {
		total = input + output
	}

	return input, output, total
}

func firstNonNil(values ...*int64) int64 {
	for _, value := range values {
		if value != nil {
			return *value
		}
	}
	return 0
}

type RecordUsageRequestDTO struct {
	UserID        *uuid.UUID     `json:"userId"`
	WorkspaceID   *uuid.UUID     `json:"workspaceId"`
	AgentID       *uuid.UUID     `json:"agentId"`
	ModelProvider string         `json:"modelProvider" binding:"required"`
	ModelName     string         `json:"modelName"     binding:"required"`
	Usage         UsageTokensDTO `json:"usage"`
}

type SaveLimitRequestDTO struct {
	Type       LimitType `json:"type"        binding:"required"`
	Target     string    `json:"target"      binding:"required"`
	UsageLimit int64     `json:"usage_limit" binding:"min=0"`
}

type GetLimitsResponseDTO struct {
	Limits []*UsageLimit `json:"limits"`
}

type ModelUsageDTO struct {
	ModelName     string `json:"modelName"     db:"model_name"`
	ModelProvider string `json:"modelProvider" db:"model_provider"`
	InputTokens   int64  `json:"inputTokens"   db:"input_tokens"`
	OutputTokens  int64  `json:"outputTokens"  db:"output_tokens"`
	TotalTokens   int64  `json:"totalTokens"   db:"total_tokens"`
}

type GetUsageResponseDTO struct {
	Models []*ModelUsageDTO `json:"models"`
}
