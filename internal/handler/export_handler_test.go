package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarfh/proctor-api/internal/models"
	"github.com/omarfh/proctor-api/internal/service"
)

type workloadStub struct{}

func (s *workloadStub) WorkloadSummary(ctx context.Context, major string) ([]models.WorkloadSummaryRow, error) {
	return []models.WorkloadSummaryRow{
		{TAID: "a", FullName: "Aya Hassan", Email: "aya@example.edu", Major: "CS", WorkloadPoints: 10, TargetWorkload: 14, AssignmentCount: 5},
	}, nil
}

func TestExportHandlerWorkloadCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(service.NewExportService(&workloadStub{}, nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exports/workload?format=csv", nil)

	handler.Workload(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "workload-summary-")
	assert.True(t, strings.Contains(w.Body.String(), "Aya Hassan"))
}

func TestExportHandlerWorkloadPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(service.NewExportService(&workloadStub{}, nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exports/workload?format=pdf", nil)

	handler.Workload(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportHandlerWorkloadBadFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewExportHandler(service.NewExportService(&workloadStub{}, nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/exports/workload?format=xlsx", nil)

	handler.Workload(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
