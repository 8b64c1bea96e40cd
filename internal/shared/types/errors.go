package types

import "errors"

var (
	ErrMissingAPIURL         = errors.New("Auditaxs API URL is not configured. Use --api-url or AUDITAXS_API_URL")
	ErrMissingAuditID        = errors.New("audit ID is required")
	ErrAuditNotFound         = errors.New("audit not found")
	ErrNoSummaryData         = errors.New("audit has no summary data")
	ErrUnsupportedReportType = errors.New("unsupported report type")
	ErrExportFailed          = errors.New("no report could be exported")
	ErrInvalidLocale         = errors.New("invalid locale")
	ErrMissingDashboardURL   = errors.New("dashboard URL is not configured. Use dashboard_url or AUDITAXS_DASHBOARD_URL")
)
