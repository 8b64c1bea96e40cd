package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/auditaxs-dashboard-go/internal/domain/repository"
	"github.com/diillson/auditaxs-dashboard-go/internal/shared/types"
	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile é o arquivo .env lido por LoadEnv quando existe.
const DefaultEnvFile = ".env"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct {
	envFile string
}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{envFile: DefaultEnvFile}
}

// NewConfigRepositoryWithEnvFile usa envFile no lugar do .env do diretório atual.
func NewConfigRepositoryWithEnvFile(envFile string) repository.ConfigRepository {
	return &ConfigRepositoryImpl{envFile: envFile}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// isNotExist trata o .env ausente como "nada configurado".
func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
