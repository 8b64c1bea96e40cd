package main

import (
	"fmt"
	"os"

	"github.com/diillson/auditaxs-dashboard-go/internal/adapter/driven/api"
	"github.com/diillson/auditaxs-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/auditaxs-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/auditaxs-dashboard-go/internal/adapter/driven/storage"
	"github.com/diillson/auditaxs-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/auditaxs-dashboard-go/internal/application/usecase"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/diillson/auditaxs-dashboard-go/pkg/console"
	"github.com/diillson/auditaxs-dashboard-go/pkg/log"
	"github.com/diillson/auditaxs-dashboard-go/pkg/version"
)

func main() {
	consoleImpl := console.NewConsole()
	exportRepo := export.NewExportRepository()

	// Os adaptadores que dependem da configuração são montados depois das flags.
	newUseCase := func(cfg *types.Config, verbose bool) (*usecase.DashboardUseCase, error) {
		logger := log.New(verbose)

		auditRepo, err := api.NewAuditRepository(cfg, logger)
		if err != nil {
			return nil, err
		}

		var publisher repository.ReportPublisher
		if cfg.S3Bucket != "" {
			publisher = storage.NewS3Publisher(cfg, logger)
		}

		return usecase.NewDashboardUseCase(auditRepo, exportRepo, publisher, consoleImpl, cfg), nil
	}

	app := cli.NewCLIApp(version.Version, config.NewConfigRepository(), newUseCase)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
