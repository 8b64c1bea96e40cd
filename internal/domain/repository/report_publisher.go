package repository

import "context"

//go:generate mockgen -destination=mocks/report_publisher_mock.go -package=mocks . ReportPublisher

// ReportPublisher envia um relatório exportado para um armazenamento remoto.
type ReportPublisher interface {
	Publish(ctx context.Context, localPath string) (string, error)
}
