package integrity

import (
	"context"

	"asset-reconciler/core/storage"
	"asset-reconciler/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket)
}

// FixStructure creates the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckSources groups the library manifests by asset and flags unversioned ones.
func (s *Service) CheckSources(ctx context.Context) (*checks.SourcesReport, error) {
	return checks.CheckSources(ctx, s.client, s.bucket)
}

// CheckJournal compares the journal table with its model.
func (s *Service) CheckJournal() (*checks.JournalReport, error) {
	return checks.CheckJournal(s.db)
}

// Report is the combined result of every check.
type Report struct {
	Structure CheckResult `json:"structure"`
	Sources   CheckResult `json:"sources"`
	Journal   CheckResult `json:"journal"`
}

// CheckResult is the outcome of one check. Status is "ok", "issues" or
// "error".
type CheckResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Detail any    `json:"detail,omitempty"`
}

func newResult(detail any, healthy bool, err error) CheckResult {
	switch {
	case err != nil:
		return CheckResult{Status: "error", Error: err.Error()}
	case healthy:
		return CheckResult{Status: "ok", Detail: detail}
	default:
		return CheckResult{Status: "issues", Detail: detail}
	}
}

// RunAll runs every check. A failing check is reported in place and never
// stops the others.
func (s *Service) RunAll(ctx context.Context) Report {
	var report Report

	missing, err := s.CheckStructure(ctx)
	report.Structure = newResult(missing, len(missing) == 0, err)

	sources, err := s.CheckSources(ctx)
	report.Sources = newResult(sources, err == nil && len(sources.Invalid) == 0, err)

	journal, err := s.CheckJournal()
	report.Journal = newResult(journal, err == nil && journal.Matched, err)

	return report
}
