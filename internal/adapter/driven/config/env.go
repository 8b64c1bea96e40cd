package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// EnvPrefix prefixa todas as variáveis de ambiente lidas pelo dashboard.
const EnvPrefix = "AUDITAXS"

// envKeys são as chaves de types.Config que podem vir do ambiente.
var envKeys = []string{
	"api_url",
	"api_token",
	"api_timeout",
	"dashboard_url",
	"locale",
	"report_name",
	"report_type",
	"dir",
	"brands",
	"products",
	"page_size",
	"s3_bucket",
	"s3_prefix",
	"aws_profile",
	"aws_region",
}

// EnvName retorna o nome da variável de ambiente de uma chave (api_url -> AUDITAXS_API_URL).
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// LoadEnv lê a configuração das variáveis AUDITAXS_*.
// Valores do arquivo .env valem apenas quando a variável não está no ambiente.
func (r *ConfigRepositoryImpl) LoadEnv() (*types.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)

	fileValues, err := readEnvFile(r.envFile)
	if err != nil {
		return nil, err
	}

	for _, key := range envKeys {
		if err := v.BindEnv(key, EnvName(key)); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", EnvName(key), err)
		}
		if value, ok := fileValues[EnvName(key)]; ok {
			v.SetDefault(key, value)
		}
	}

	var config types.Config
	err = v.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			trimSliceHook(),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("error decoding environment: %w", err)
	}

	return &config, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return values, nil
}

// trimSliceHook remove espaços e itens vazios de listas vindas de "pdf, xlsx,".
func trimSliceHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	}
}
