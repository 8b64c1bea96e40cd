package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/diillson/auditaxs-dashboard-go/internal/application/usecase"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/entity"
	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/diillson/auditaxs-dashboard-go/pkg/version"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// needsUseCase marca os comandos que falam com a API.
const needsUseCase = "auditaxs/usecase"

// UseCaseFactory monta o caso de uso a partir da configuração resolvida.
type UseCaseFactory func(cfg *types.Config, verbose bool) (*usecase.DashboardUseCase, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd          *cobra.Command
	configRepo       repository.ConfigRepository
	newUseCase       UseCaseFactory
	dashboardUseCase *usecase.DashboardUseCase
	config           *types.Config
	version          string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, newUseCase UseCaseFactory) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		newUseCase: newUseCase,
		version:    versionStr,
	}

	rootCmd := &cobra.Command{
		Use:               "auditaxs",
		Short:             "Auditaxs Dashboard CLI",
		Long:              "Consulta, resume e exporta as auditorias de taxas de cartão do Auditaxs.",
		Version:           version.FormatVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE:              app.runRoot,
	}
	rootCmd.SetVersionTemplate(`{{printf "Auditaxs Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the Auditaxs API (env AUDITAXS_API_URL)")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the Auditaxs API (env AUDITAXS_API_TOKEN)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log API requests and other diagnostics")

	rootCmd.AddCommand(
		app.newListCmd(),
		app.newSummaryCmd(),
		app.newDetailsCmd(),
		app.newExportCmd(),
		app.newShareCmd(),
		app.newDeleteCmd(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application. Ctrl+C cancela a requisição em andamento.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.rootCmd.ExecuteContext(ctx)
}

// setup resolve a configuração e monta o caso de uso antes de cada comando.
func (app *CLIApp) setup(cmd *cobra.Command, _ []string) error {
	global, err := parseGlobalFlags(cmd)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(app.configRepo, global)
	if err != nil {
		return err
	}
	app.config = cfg

	if _, ok := cmd.Annotations[needsUseCase]; !ok {
		return nil
	}

	useCase, err := app.newUseCase(cfg, global.Verbose)
	if err != nil {
		return err
	}
	app.dashboardUseCase = useCase
	return nil
}

func (app *CLIApp) runRoot(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner()
	if latest, ok := version.LatestRelease(cmd.Context(), version.ReleasesURL, app.version); ok {
		pterm.Warning.Printfln("A new version of Auditaxs Dashboard is available: %s", latest)
		pterm.Info.Println("Please update using: go install github.com/diillson/auditaxs-dashboard-go/cmd/auditaxs@latest")
	}
	return cmd.Help()
}

func (app *CLIApp) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List the audits of the authenticated user",
		Args:        cobra.NoArgs,
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.dashboardUseCase.ListAudits(cmd.Context())
		},
	}
}

func (app *CLIApp) newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "summary <audit-id>",
		Short:       "Show the summary table and charts of an audit",
		Args:        cobra.ExactArgs(1),
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			return app.dashboardUseCase.ShowSummary(cmd.Context(), cliArgs.AuditID, entity.FilterSelection{
				Brands:   cliArgs.Brands,
				Products: cliArgs.Products,
			})
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func (app *CLIApp) newDetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "details <audit-id>",
		Short:       "Show a page of the sale details of an audit",
		Args:        cobra.ExactArgs(1),
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			return app.dashboardUseCase.ShowDetails(cmd.Context(), cliArgs.AuditID, cliArgs.Page, cliArgs.PageSize)
		},
	}
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("page-size", 0, "Items per page (default from config: 50)")
	return cmd
}

func (app *CLIApp) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "export <audit-id>",
		Short:       "Export the summary of an audit to PDF, XLSX, CSV or JSON",
		Args:        cobra.ExactArgs(1),
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			_, err = app.dashboardUseCase.ExportSummary(cmd.Context(), cliArgs)
			return err
		},
	}
	cmd.Flags().StringP("report-name", "n", "", "Base name for the report files (without extension)")
	cmd.Flags().StringSliceP("report-type", "y", nil, "Report types: pdf, xlsx, csv, json (default pdf)")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	cmd.Flags().Bool("publish", false, "Upload the exported files to the configured S3 bucket")
	addFilterFlags(cmd)
	return cmd
}

func (app *CLIApp) newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "share <audit-id>",
		Short:       "Print the public link of an audit summary",
		Args:        cobra.ExactArgs(1),
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			_, err = app.dashboardUseCase.ShareSummary(cliArgs.AuditID, cliArgs.Locale)
			return err
		},
	}
	cmd.Flags().String("locale", "", "Locale of the shared page (default from config: pt-BR)")
	return cmd
}

func (app *CLIApp) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "delete <audit-id>",
		Short:       "Delete an audit",
		Args:        cobra.ExactArgs(1),
		Annotations: useCaseAnnotation(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliArgs, err := app.parseArgs(cmd, args)
			if err != nil {
				return err
			}
			return app.dashboardUseCase.DeleteAudit(cmd.Context(), cliArgs.AuditID, cliArgs.Yes)
		},
	}
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	return cmd
}

func useCaseAnnotation() map[string]string {
	return map[string]string{needsUseCase: "true"}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("brand", nil, "Only rows of these brands (repeatable or comma-separated)")
	cmd.Flags().StringSlice("product", nil, "Only rows of these products (repeatable or comma-separated)")
}
