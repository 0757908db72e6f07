package service

import (
	"fmt"
	"os"

	"github.com/xolan/pausa/internal/config"
)

// ConfigService provides operations for managing configuration
type ConfigService struct {
	configPath string
	config     config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update updates the configuration with new values
func (s *ConfigService) Update(cfg config.Config) error {
	// Normalize and validate
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Write the config file
	if err := config.Save(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	// Update in-memory config
	s.config = cfg

	return nil
}

// Init creates a commented sample config file
func (s *ConfigService) Init() error {
	if err := config.WriteSample(s.configPath); err != nil {
		return err
	}
	s.config = config.DefaultConfig()
	return nil
}
