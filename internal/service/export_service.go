package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/omarfh/proctor-api/internal/models"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
	"github.com/omarfh/proctor-api/pkg/export"
)

type workloadReader interface {
	WorkloadSummary(ctx context.Context, major string) ([]models.WorkloadSummaryRow, error)
}

// ExportService renders the proctoring workload summary as a downloadable
// file.
type ExportService struct {
	tas    workloadReader
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

func NewExportService(tas workloadReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		tas:    tas,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		logger: logger,
	}
}

// WorkloadCSV renders the workload summary, optionally filtered by major.
func (s *ExportService) WorkloadCSV(ctx context.Context, major string) ([]byte, error) {
	data, err := s.workloadDataset(ctx, major)
	if err != nil {
		return nil, err
	}
	out, err := s.csv.Render(*data)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	return out, nil
}

// WorkloadPDF renders the workload summary as a PDF table.
func (s *ExportService) WorkloadPDF(ctx context.Context, major string) ([]byte, error) {
	data, err := s.workloadDataset(ctx, major)
	if err != nil {
		return nil, err
	}
	title := "Proctoring Workload Summary"
	if major != "" {
		title = fmt.Sprintf("%s (%s)", title, major)
	}
	out, err := s.pdf.Render(*data, title)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
	}
	return out, nil
}

func (s *ExportService) workloadDataset(ctx context.Context, major string) (*export.Dataset, error) {
	rows, err := s.tas.WorkloadSummary(ctx, major)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load workload summary")
	}

	data := &export.Dataset{
		Headers: []string{"Name", "Email", "Major", "Workload Points", "Target Workload", "Assignments"},
		Rows:    make([]map[string]string, 0, len(rows)),
	}
	for _, row := range rows {
		data.Rows = append(data.Rows, map[string]string{
			"Name":            row.FullName,
			"Email":           row.Email,
			"Major":           row.Major,
			"Workload Points": strconv.FormatFloat(row.WorkloadPoints, 'f', 1, 64),
			"Target Workload": strconv.FormatFloat(row.TargetWorkload, 'f', 1, 64),
			"Assignments":     strconv.Itoa(row.AssignmentCount),
		})
	}
	return data, nil
}
