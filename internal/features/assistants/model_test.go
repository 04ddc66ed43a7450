package assistants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_AssistantValidate(t *testing.T) {
	valid := &Assistant{Name: "Support bot", Model: "gpt-4o", Temperature: 0.7}
	assert.NoError(t, valid.Validate())

	missingName := &Assistant{Model: "gpt-4o"}
	assert.Error(t, missingName.Validate())

	missingModel := &Assistant{Name: "Support bot"}
	assert.Error(t, missingModel.Validate())

	tooHot := &Assistant{Name: "Support bot", Model: "gpt-4o", Temperature: 2.1}
	assert.Error(t, tooHot.Validate())

	boundary := &Assistant{Name: "Support bot", Model: "gpt-4o", Temperature: 2}
	assert.NoError(t, boundary.Validate())
}
