package types

import "time"

// Config represents the application configuration loaded from a file or the environment.
type Config struct {
	APIURL       string   `json:"api_url" yaml:"api_url" toml:"api_url" mapstructure:"api_url"`
	APIToken     string   `json:"api_token" yaml:"api_token" toml:"api_token" mapstructure:"api_token"`
	APITimeout   int      `json:"api_timeout" yaml:"api_timeout" toml:"api_timeout" mapstructure:"api_timeout"`
	DashboardURL string   `json:"dashboard_url" yaml:"dashboard_url" toml:"dashboard_url" mapstructure:"dashboard_url"`
	Locale       string   `json:"locale" yaml:"locale" toml:"locale" mapstructure:"locale"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name" mapstructure:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type" mapstructure:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir" mapstructure:"dir"`
	Brands       []string `json:"brands" yaml:"brands" toml:"brands" mapstructure:"brands"`
	Products     []string `json:"products" yaml:"products" toml:"products" mapstructure:"products"`
	PageSize     int      `json:"page_size" yaml:"page_size" toml:"page_size" mapstructure:"page_size"`
	S3Bucket     string   `json:"s3_bucket" yaml:"s3_bucket" toml:"s3_bucket" mapstructure:"s3_bucket"`
	S3Prefix     string   `json:"s3_prefix" yaml:"s3_prefix" toml:"s3_prefix" mapstructure:"s3_prefix"`
	AWSProfile   string   `json:"aws_profile" yaml:"aws_profile" toml:"aws_profile" mapstructure:"aws_profile"`
	AWSRegion    string   `json:"aws_region" yaml:"aws_region" toml:"aws_region" mapstructure:"aws_region"`
}

// DefaultConfig retorna os valores usados quando nada foi configurado.
func DefaultConfig() *Config {
	return &Config{
		APITimeout: 30,
		Locale:     "pt-BR",
		ReportName: "summary",
		ReportType: []string{"pdf"},
		PageSize:   50,
	}
}

// Timeout retorna o timeout das chamadas à API.
func (c *Config) Timeout() time.Duration {
	if c.APITimeout <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.APITimeout) * time.Second
}

// Merge sobrescreve os campos de c pelos campos não vazios de other.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	mergeString(&c.APIURL, other.APIURL)
	mergeString(&c.APIToken, other.APIToken)
	mergeString(&c.DashboardURL, other.DashboardURL)
	mergeString(&c.Locale, other.Locale)
	mergeString(&c.ReportName, other.ReportName)
	mergeString(&c.Dir, other.Dir)
	mergeString(&c.S3Bucket, other.S3Bucket)
	mergeString(&c.S3Prefix, other.S3Prefix)
	mergeString(&c.AWSProfile, other.AWSProfile)
	mergeString(&c.AWSRegion, other.AWSRegion)
	mergeSlice(&c.ReportType, other.ReportType)
	mergeSlice(&c.Brands, other.Brands)
	mergeSlice(&c.Products, other.Products)
	if other.APITimeout > 0 {
		c.APITimeout = other.APITimeout
	}
	if other.PageSize > 0 {
		c.PageSize = other.PageSize
	}
}

func mergeString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func mergeSlice(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = append([]string(nil), src...)
	}
}
