package handlers

import (
	"net/http"

	"github.com/ledgerly/ledgerly-backend/internal/api/response"
	"github.com/ledgerly/ledgerly-backend/internal/apperrors"
	"github.com/ledgerly/ledgerly-backend/internal/service"
)

// SummaryHandler handles HTTP requests for the financial summary endpoint.
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler with the provided service dependency.
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
	}
}

// Summary handles GET requests for the aggregate financial metrics and
// per-status counts.
//
// Endpoint: GET /api/summary
// Response: 200 OK with FinancialSummary
// Error: 500 Internal Server Error if aggregation fails
func (h *SummaryHandler) Summary(w http.ResponseWriter, _ *http.Request) {
	summary, err := h.summaryService.GetSummary()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToGetSummary.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, summary)
}
