package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mertkaya/platformhub/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildProjectWorkbook(t *testing.T) {
	project := &models.Project{
		ID:          uuid.New(),
		Title:       "Personal Portfolio",
		Description: "Website and socials",
	}

	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []*models.ProjectItem{
		{Platform: "GitHub", Username: "octocat", CreatedAt: createdAt},
		{Platform: "Vercel", Link: "https://myapp.vercel.app", Notes: "prod deploy", CreatedAt: createdAt},
	}

	workbook, err := NewExportService().BuildProjectWorkbook(project, items)
	assert.NoError(t, err)
	defer workbook.Close()

	header, err := workbook.GetCellValue("Items", "A1")
	assert.NoError(t, err)
	assert.Equal(t, "Platform", header)

	platform, err := workbook.GetCellValue("Items", "A2")
	assert.NoError(t, err)
	assert.Equal(t, "GitHub", platform)

	username, err := workbook.GetCellValue("Items", "B2")
	assert.NoError(t, err)
	assert.Equal(t, "octocat", username)

	link, err := workbook.GetCellValue("Items", "C3")
	assert.NoError(t, err)
	assert.Equal(t, "https://myapp.vercel.app", link)

	notes, err := workbook.GetCellValue("Items", "D3")
	assert.NoError(t, err)
	assert.Equal(t, "prod deploy", notes)

	created, err := workbook.GetCellValue("Items", "E2")
	assert.NoError(t, err)
	assert.Equal(t, createdAt.Format(time.RFC3339), created)

	props, err := workbook.GetDocProps()
	assert.NoError(t, err)
	assert.Equal(t, "Personal Portfolio", props.Title)
	assert.Equal(t, "Website and socials", props.Description)
}

func TestBuildProjectWorkbookEmpty(t *testing.T) {
	project := &models.Project{ID: uuid.New(), Title: "Empty"}

	workbook, err := NewExportService().BuildProjectWorkbook(project, nil)
	assert.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Items")
	assert.NoError(t, err)
	assert.Len(t, rows, 1, "only the header row should be present")
}
