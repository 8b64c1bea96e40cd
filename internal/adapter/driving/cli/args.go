package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// parseGlobalFlags lê as flags persistentes da raiz.
func parseGlobalFlags(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, err := flags.GetString("config-file")
	if err != nil {
		return nil, err
	}
	apiURL, _ := flags.GetString("api-url")
	token, _ := flags.GetString("token")
	verbose, _ := flags.GetBool("verbose")

	return &types.CLIArgs{
		ConfigFile: configFile,
		APIURL:     apiURL,
		APIToken:   token,
		Verbose:    verbose,
	}, nil
}

// resolveConfig aplica, em ordem: padrões, arquivo, ambiente e flags globais.
func resolveConfig(configRepo repository.ConfigRepository, global *types.CLIArgs) (*types.Config, error) {
	cfg := types.DefaultConfig()

	if global.ConfigFile != "" {
		fileCfg, err := configRepo.LoadConfigFile(global.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
		cfg.Merge(fileCfg)
	}

	envCfg, err := configRepo.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("error loading environment: %w", err)
	}
	cfg.Merge(envCfg)

	cfg.Merge(&types.Config{
		APIURL:   global.APIURL,
		APIToken: global.APIToken,
	})
	return cfg, nil
}

// parseArgs monta os CLIArgs de um subcomando. Flags não informadas
// herdam os valores da configuração resolvida.
func (app *CLIApp) parseArgs(cmd *cobra.Command, positional []string) (*types.CLIArgs, error) {
	args, err := parseGlobalFlags(cmd)
	if err != nil {
		return nil, err
	}
	if len(positional) > 0 {
		args.AuditID = positional[0]
	}

	cfg := app.config
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	flags := cmd.Flags()

	args.Brands = stringSliceFlag(flags, "brand", cfg.Brands)
	args.Products = stringSliceFlag(flags, "product", cfg.Products)
	args.ReportType = stringSliceFlag(flags, "report-type", cfg.ReportType)
	args.ReportName = stringFlag(flags, "report-name", cfg.ReportName)
	args.Locale = stringFlag(flags, "locale", cfg.Locale)
	args.Page = intFlag(flags, "page", 1)
	args.PageSize = intFlag(flags, "page-size", cfg.PageSize)
	args.Publish = boolFlag(flags, "publish")
	args.Yes = boolFlag(flags, "yes")

	dir := stringFlag(flags, "dir", cfg.Dir)
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	} else {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}
	args.Dir = dir

	return args, nil
}

func stringFlag(flags *pflag.FlagSet, name, fallback string) string {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		value, _ := flags.GetString(name)
		return value
	}
	return fallback
}

func stringSliceFlag(flags *pflag.FlagSet, name string, fallback []string) []string {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		value, _ := flags.GetStringSlice(name)
		return value
	}
	return fallback
}

func intFlag(flags *pflag.FlagSet, name string, fallback int) int {
	if flag := flags.Lookup(name); flag != nil && flag.Changed {
		value, _ := flags.GetInt(name)
		return value
	}
	return fallback
}

func boolFlag(flags *pflag.FlagSet, name string) bool {
	if flags.Lookup(name) == nil {
		return false
	}
	value, _ := flags.GetBool(name)
	return value
}
