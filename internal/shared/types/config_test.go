package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfigMerge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(&Config{
		APIURL:     "https://api.auditaxs.test",
		ReportType: []string{"csv", "xlsx"},
		PageSize:   10,
	})
	cfg.Merge(&Config{APIURL: "https://override.test", Locale: ""})

	assert.Equal(t, "https://override.test", cfg.APIURL)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, []string{"csv", "xlsx"}, cfg.ReportType)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 30, cfg.APITimeout)
}

func TestConfigMergeNil(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Merge(nil)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, (&Config{}).Timeout())
	assert.Equal(t, 5*time.Second, (&Config{APITimeout: 5}).Timeout())
}
