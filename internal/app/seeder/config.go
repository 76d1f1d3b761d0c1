package seeder

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config controls a seeding run. Only the environment is read; flags of
// cmd/seeder override it.
type Config struct {
	CatalogPath string `env:"SEEDER_CATALOG_PATH" env-default:"./catalog.yaml"`
	BatchSize   int    `env:"SEEDER_BATCH_SIZE"   env-default:"500"`
	DryRun      bool   `env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads SEEDER_* variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("seeder: read env: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	switch {
	case c.CatalogPath == "":
		return errors.New("seeder: catalog path is empty")
	case c.BatchSize < 0:
		return fmt.Errorf("seeder: batch size %d is negative", c.BatchSize)
	}
	return nil
}
