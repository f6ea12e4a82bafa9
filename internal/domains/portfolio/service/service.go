package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"aurexis-backend/internal/domains/portfolio/model"
)

type ServiceInterface interface {
	ListProjects(ctx context.Context, filter model.ListFilter) ([]model.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*model.Project, error)
	// AddProject appends at order = current number of projects
	AddProject(ctx context.Context, req *model.ProjectRequest) (*model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *model.ProjectRequest) (*model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	// ExportProjects builds an xlsx workbook of every project
	ExportProjects(ctx context.Context) (*excelize.File, int, error)
}
