package usage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func Test_UsageTokensDTO_Normalize_SnakeCaseFields(t *testing.T) {
	dto := &UsageTokensDTO{
		InputTokens:  int64Ptr(100),
		OutputTokens: int64Ptr(40),
		TotalTokens:  int64Ptr(140),
	}

	input, output, total := dto.Normalize()
	assert.Equal(t, int64(100), input)
	assert.Equal(t, int64(40), output)
	assert.Equal(t, int64(140), total)
}

func Test_UsageTokensDTO_Normalize_CamelCaseAliases(t *testing.T) {
	dto := &UsageTokensDTO{
		PromptTokens:     int64Ptr(10),
		CompletionTokens: int64Ptr(5),
	}

	input, output, total := dto.Normalize()
	assert.Equal(t, int64(10), input)
	assert.Equal(t, int64(5), output)
	assert.Equal(t, int64(15), total)
}

func Test_UsageTokensDTO_Normalize_SnakeCaseWinsOverCamel(t *testing.T) {
	dto := &UsageTokensDTO{
		InputTokens:  int64Ptr(7),
		PromptTokens: int64Ptr(999),
	}

	input, _, _ := dto.Normalize()
	assert.Equal(t, int64(7), input)
}

func Test_UsageTokensDTO_Normalize_MissingTotal_SumsInputOutput(t *testing.T) {
	dto := &UsageTokensDTO{
		InputTokens:  int64Ptr(3),
		OutputTokens: int64Ptr(4),
	}

	_, _, total := dto.Normalize()
	assert.Equal(t, int64(7), total)
}

func Test_UsageTokensDTO_Normalize_AllMissing_Zeroes(t *testing.T) {
	input, output, total := (&UsageTokensDTO{}).Normalize()
	assert.Zero(t, input)
	assert.Zero(t, output)
	assert.Zero(t, total)
}

func Test_UsageTokensDTO_UnmarshalsBothNamingStyles(t *testing.T) {
	var dto UsageTokensDTO
	err := json.Unmarshal(
		[]byte(`{"promptTokens": 10, "completionTokens": 5, "totalTokens": 15}`),
		&dto,
	)
	assert.NoError(t, err)

	input, output, total := dto.Normalize()
	assert.Equal(t, int64(10), input)
	assert.Equal(t, int64(5), output)
	assert.Equal(t, int64(15), total)
}
