package service

import (
	"context"
	"strings"

	"github.com/xuri/excelize/v2"

	"aurexis-backend/internal/domains/portfolio/model"
)

const exportSheet = "Portfolio"

var exportHeaders = []string{
	"ID",
	"Order",
	"Title",
	"Category",
	"Summary",
	"Tech",
	"Duration (days)",
	"Featured",
	"Link",
	"Image",
	"Created At",
	"Updated At",
}

func (s *portfolioService) ExportProjects(ctx context.Context) (*excelize.File, int, error) {
	projects, err := s.repo.List(ctx, model.ListFilter{})
	if err != nil {
		return nil, 0, err
	}

	f, err := buildProjectsWorkbook(projects)
	if err != nil {
		return nil, 0, model.NewExportProjectsError(err)
	}
	return f, len(projects), nil
}

func buildProjectsWorkbook(projects []model.Project) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	// Row 1: header
	for colIdx, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err := f.SetCellValue(exportSheet, cell, header); err != nil {
			return nil, err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
		_ = f.SetCellStyle(exportSheet, "A1", lastCol, headerStyle)
	}

	// Data rows from row 2
	for i, p := range projects {
		row := []interface{}{
			p.ID.String(),
			p.Order,
			p.Title,
			string(p.Category),
			p.Summary,
			strings.Join(p.Tech, ", "),
			p.DurationDays,
			p.Featured,
			p.Link,
			p.Image,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
			p.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		start, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(exportSheet, start, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}
