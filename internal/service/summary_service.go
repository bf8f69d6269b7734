package service

import (
	"github.com/ledgerly/ledgerly-backend/internal/model"
	"github.com/ledgerly/ledgerly-backend/internal/repository"
)

// SummaryService exposes the on-demand financial aggregation. It holds no
// state and never caches: every call reflects the store as of the moment the
// queries run.
type SummaryService struct {
	summaryRepo *repository.SummaryRepository
}

// NewSummaryService creates a new SummaryService with the provided repository dependency.
func NewSummaryService(summaryRepo *repository.SummaryRepository) *SummaryService {
	return &SummaryService{summaryRepo: summaryRepo}
}

// GetSummary computes the financial summary and per-status counts.
func (s *SummaryService) GetSummary() (model.FinancialSummary, error) {
	return s.summaryRepo.GetFinancialSummary()
}
