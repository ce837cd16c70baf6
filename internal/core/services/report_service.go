package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/SscSPs/digital_khata_client/internal/apperrors"
	"github.com/SscSPs/digital_khata_client/internal/core/domain"
	portssvc "github.com/SscSPs/digital_khata_client/internal/core/ports/services"
)

type reportService struct {
	BaseService
	api portssvc.ReportsAPI
}

// NewReportService creates the report service.
func NewReportService(api portssvc.ReportsAPI, notifier Notifier) portssvc.ReportSvcFacade {
	return &reportService{
		BaseService: BaseService{Notifier: notifier},
		api:         api,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

func (s *reportService) GetReport(ctx context.Context, kind domain.ReportKind, params url.Values) (domain.Report, error) {
	if _, err := domain.ParseReportKind(string(kind)); err != nil {
		return nil, s.fail(ctx, apperrors.NewValidationError("kind", err.Error()), "Failed to fetch report")
	}
	report, err := s.api.GetReport(ctx, kind, params)
	if err != nil {
		return nil, s.fail(ctx, fmt.Errorf("failed to get %s report: %w", kind, err), "Failed to fetch report", slog.String("report", string(kind)))
	}
	return report, nil
}

func (s *reportService) NotifyExport(kind domain.ReportKind, format string) {
	s.notifyInfo(fmt.Sprintf("Exporting %s as %s...", kind.Title(), strings.ToUpper(format)))
}
