package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omarfh/proctor-api/internal/service"
	appErrors "github.com/omarfh/proctor-api/pkg/errors"
	"github.com/omarfh/proctor-api/pkg/response"
)

// ExportHandler serves workload summary downloads.
type ExportHandler struct {
	exports *service.ExportService
}

// NewExportHandler constructs handler.
func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

// Workload godoc
// @Summary Download the proctoring workload summary
// @Tags Exports
// @Produce text/csv
// @Param format query string false "csv or pdf" default(csv)
// @Param major query string false "Filter by major"
// @Success 200 {file} file
// @Router /exports/workload [get]
func (h *ExportHandler) Workload(c *gin.Context) {
	major := c.Query("major")
	format := c.DefaultQuery("format", "csv")

	var (
		payload  []byte
		mimeType string
		err      error
	)
	switch format {
	case "csv":
		payload, err = h.exports.WorkloadCSV(c.Request.Context(), major)
		mimeType = "text/csv"
	case "pdf":
		payload, err = h.exports.WorkloadPDF(c.Request.Context(), major)
		mimeType = "application/pdf"
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("workload-summary-%s.%s", time.Now().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, mimeType, payload)
}
