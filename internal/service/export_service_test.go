package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/models"
)

type mockWorkloadReader struct {
	rows []models.WorkloadSummaryRow
}

func (m *mockWorkloadReader) WorkloadSummary(ctx context.Context, major string) ([]models.WorkloadSummaryRow, error) {
	if major == "" {
		return m.rows, nil
	}
	var out []models.WorkloadSummaryRow
	for _, row := range m.rows {
		if row.Major == major {
			out = append(out, row)
		}
	}
	return out, nil
}

func summaryRows() []models.WorkloadSummaryRow {
	return []models.WorkloadSummaryRow{
		{TAID: "a", FullName: "Aya Hassan", Email: "aya@example.edu", Major: "CS", WorkloadPoints: 10.5, TargetWorkload: 14, AssignmentCount: 7},
		{TAID: "b", FullName: "Omar Khaled", Email: "omar@example.edu", Major: "EE", WorkloadPoints: 3, TargetWorkload: 14, AssignmentCount: 2},
	}
}

func TestWorkloadCSV(t *testing.T) {
	svc := NewExportService(&mockWorkloadReader{rows: summaryRows()}, nil)
	out, err := svc.WorkloadCSV(context.Background(), "")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Name", "Email", "Major", "Workload Points", "Target Workload", "Assignments"}, records[0])
	assert.Equal(t, []string{"Aya Hassan", "aya@example.edu", "CS", "10.5", "14.0", "7"}, records[1])
	assert.Equal(t, "Omar Khaled", records[2][0])
}

func TestWorkloadCSVFilteredByMajor(t *testing.T) {
	svc := NewExportService(&mockWorkloadReader{rows: summaryRows()}, nil)
	out, err := svc.WorkloadCSV(context.Background(), "EE")
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Omar Khaled", records[1][0])
}

func TestWorkloadPDF(t *testing.T) {
	svc := NewExportService(&mockWorkloadReader{rows: summaryRows()}, nil)
	out, err := svc.WorkloadPDF(context.Background(), "")
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
