package services

import (
	"time"

	"github.com/mertkaya/platformhub/internal/models"
	"github.com/xuri/excelize/v2"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildProjectWorkbook renders a project and its items as an xlsx workbook
// with one row per item.
func (s *ExportService) BuildProjectWorkbook(project *models.Project, items []*models.ProjectItem) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Items"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Platform", "Username", "Link", "Notes", "Created At"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, item := range items {
		values := []interface{}{
			item.Platform,
			item.Username,
			item.Link,
			item.Notes,
			item.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       project.Title,
		Description: project.Description,
	}); err != nil {
		return nil, err
	}

	return f, nil
}
