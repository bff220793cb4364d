package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProjectStatus(t *testing.T) {
	assert.Equal(t, StatusOngoing, ParseProjectStatus("ongoing"))
	assert.Equal(t, StatusCompleted, ParseProjectStatus("completed"))
	assert.Equal(t, StatusArchived, ParseProjectStatus("archived"))

	// Unknown values default to ongoing
	assert.Equal(t, StatusOngoing, ParseProjectStatus(""))
	assert.Equal(t, StatusOngoing, ParseProjectStatus("paused"))
	assert.Equal(t, StatusOngoing, ParseProjectStatus("ARCHIVED"))
}

func TestProjectValidate(t *testing.T) {
	project := &Project{Title: "Demo"}
	assert.NoError(t, project.Validate())

	project.Title = ""
	assert.ErrorIs(t, project.Validate(), ErrProjectTitleRequired)
}
