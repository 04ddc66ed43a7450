package workspaces_services

import (
	"testing"

	workspaces_models "chathub-backend/internal/features/workspaces/models"

	"github.com/stretchr/testify/assert"
)

func Test_ApplyWorkspaceDefaults_EmptyWorkspace(t *testing.T) {
	workspace := &workspaces_models.Workspace{}
	applyWorkspaceDefaults(workspace)

	assert.Equal(t, "gpt-4o", workspace.DefaultModel)
	assert.Equal(t, 4096, workspace.DefaultContextLength)
	assert.Equal(t, float64(1), workspace.DefaultTemperature)
	assert.Equal(t, "openai", workspace.EmbeddingsProvider)
}

func Test_ApplyWorkspaceDefaults_ExplicitValuesKept(t *testing.T) {
	workspace := &workspaces_models.Workspace{
		DefaultModel:         "claude-sonnet-4",
		DefaultContextLength: 8192,
		DefaultTemperature:   0.3,
		EmbeddingsProvider:   "gemini",
	}
	applyWorkspaceDefaults(workspace)

	assert.Equal(t, "claude-sonnet-4", workspace.DefaultModel)
	assert.Equal(t, 8192, workspace.DefaultContextLength)
	assert.Equal(t, 0.3, workspace.DefaultTemperature)
	assert.Equal(t, "gemini", workspace.EmbeddingsProvider)
}

func Test_ApplyWorkspaceDefaults_UnsetTemperature_DefaultsToOne(t *testing.T) {
	tooHot := &workspaces_models.Workspace{DefaultTemperature: 2.5}
	applyWorkspaceDefaults(tooHot)
	assert.Equal(t, float64(1), tooHot.DefaultTemperature)

	negative := &workspaces_models.Workspace{DefaultTemperature: -0.1}
	applyWorkspaceDefaults(negative)
	assert.Equal(t, float64(1), negative.DefaultTemperature)

	// Zero means unset everywhere: chat creation falls back to the
	// workspace default on a zero temperature, so a stored zero would
	// never reach a provider anyway.
	zero := &workspaces_models.Workspace{DefaultTemperature: 0}
	applyWorkspaceDefaults(zero)
	assert.Equal(t, float64(1), zero.DefaultTemperature)
}
