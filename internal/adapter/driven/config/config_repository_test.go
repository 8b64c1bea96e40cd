package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFileFormats(t *testing.T) {
	files := map[string]string{
		"config.toml": `
api_url = "https://api.auditaxs.test"
api_timeout = 12
report_type = ["pdf", "xlsx"]
brands = ["Visa"]
`,
		"config.yaml": `
api_url: https://api.auditaxs.test
api_timeout: 12
report_type: [pdf, xlsx]
brands: [Visa]
`,
		"config.json": `{
  "api_url": "https://api.auditaxs.test",
  "api_timeout": 12,
  "report_type": ["pdf", "xlsx"],
  "brands": ["Visa"]
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, name, content))
			require.NoError(t, err)

			assert.Equal(t, "https://api.auditaxs.test", cfg.APIURL)
			assert.Equal(t, 12, cfg.APITimeout)
			assert.Equal(t, []string{"pdf", "xlsx"}, cfg.ReportType)
			assert.Equal(t, []string{"Visa"}, cfg.Brands)
		})
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "a=b"))
	assert.ErrorContains(t, err, "unsupported config file format: .ini")

	_, err = repo.LoadConfigFile(writeFile(t, "config.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("AUDITAXS_API_URL", "https://env.auditaxs.test")
	t.Setenv("AUDITAXS_API_TIMEOUT", "45")
	t.Setenv("AUDITAXS_REPORT_TYPE", "pdf, xlsx,")
	t.Setenv("AUDITAXS_PAGE_SIZE", "20")

	repo := NewConfigRepositoryWithEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	cfg, err := repo.LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://env.auditaxs.test", cfg.APIURL)
	assert.Equal(t, 45, cfg.APITimeout)
	assert.Equal(t, []string{"pdf", "xlsx"}, cfg.ReportType)
	assert.Equal(t, 20, cfg.PageSize)
	assert.Empty(t, cfg.APIToken)
}

func TestLoadEnvFileIsOverriddenByEnvironment(t *testing.T) {
	envFile := writeFile(t, ".env", "AUDITAXS_API_URL=https://file.auditaxs.test\nAUDITAXS_API_TOKEN=file-token\nAUDITAXS_BRANDS=Visa,Master\n")
	t.Setenv("AUDITAXS_API_URL", "https://env.auditaxs.test")

	cfg, err := NewConfigRepositoryWithEnvFile(envFile).LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://env.auditaxs.test", cfg.APIURL)
	assert.Equal(t, "file-token", cfg.APIToken)
	assert.Equal(t, []string{"Visa", "Master"}, cfg.Brands)
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "AUDITAXS_S3_BUCKET", EnvName("s3_bucket"))
}
