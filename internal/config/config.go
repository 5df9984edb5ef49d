// Package config loads the command line defaults from gocfs.yaml, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocfs/internal/engine"
	"github.com/alexiusacademia/gocfs/internal/loads"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GOCFS_LOG_LEVEL.
const EnvPrefix = "GOCFS"

// Languages the report can be printed in.
var Languages = []string{"en", "ja", "zh-Hant"}

// Config is the whole configuration file.
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Material   MaterialConfig   `mapstructure:"material"`
	Geometry   GeometryConfig   `mapstructure:"geometry"`
	Factors    FactorsConfig    `mapstructure:"factors"`
	Deflection DeflectionConfig `mapstructure:"deflection"`
	Report     ReportConfig     `mapstructure:"report"`
	Batch      BatchConfig      `mapstructure:"batch"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig points at a user section and fastener file.
type CatalogConfig struct {
	Path string `mapstructure:"path"` // empty means the built-in tables
}

// MaterialConfig is the default steel grade.
type MaterialConfig struct {
	YieldStrength  float64 `mapstructure:"yield_strength"`
	ElasticModulus float64 `mapstructure:"elastic_modulus"`
	MaterialFactor float64 `mapstructure:"material_factor"`
}

// GeometryConfig holds geometry that requests may leave out.
type GeometryConfig struct {
	BearingLength float64 `mapstructure:"bearing_length"` // mm
}

// FactorsConfig is the default set of partial load factors.
type FactorsConfig struct {
	Wind    float64 `mapstructure:"wind"`
	Dead    float64 `mapstructure:"dead"`
	Imposed float64 `mapstructure:"imposed"`
	Fixture float64 `mapstructure:"fixture"`
}

// DeflectionConfig is the default deflection limit.
type DeflectionConfig struct {
	Criterion string  `mapstructure:"criterion"`
	Custom    float64 `mapstructure:"custom"`
}

// ReportConfig sets the worksheet language.
type ReportConfig struct {
	Language string `mapstructure:"language"`
}

// BatchConfig bounds the number of concurrent calculations.
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// Load reads the configuration. With an empty path gocfs.yaml is searched
// for in ., ./configs and $HOME/.gocfs and a missing file is not an error.
func Load(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gocfs")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".gocfs"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("catalog.path", "")

	v.SetDefault("material.yield_strength", 200.0)
	v.SetDefault("material.elastic_modulus", 205000.0)
	v.SetDefault("material.material_factor", 1.2)

	v.SetDefault("geometry.bearing_length", 32.0)

	v.SetDefault("factors.wind", loads.DefaultFactors.Wind)
	v.SetDefault("factors.dead", loads.DefaultFactors.Dead)
	v.SetDefault("factors.imposed", loads.DefaultFactors.Imposed)
	v.SetDefault("factors.fixture", loads.DefaultFactors.Fixture)

	v.SetDefault("deflection.criterion", engine.CriterionL240)
	v.SetDefault("deflection.custom", 0.0)

	v.SetDefault("report.language", "en")
	v.SetDefault("batch.concurrency", 4)
}

// loadEnvFile loads the first .env found. Values already in the environment
// win.
func loadEnvFile() {
	paths := []string{".env"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".gocfs", ".env"))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				return
			}
		}
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1, got %d", cfg.Batch.Concurrency)
	}
	if cfg.Geometry.BearingLength <= 0 {
		return fmt.Errorf("geometry.bearing_length must be positive, got %g", cfg.Geometry.BearingLength)
	}
	if !supported(cfg.Report.Language) {
		return fmt.Errorf("report.language %q is not one of %s", cfg.Report.Language, strings.Join(Languages, ", "))
	}
	if _, ok := cfg.DeflectionDefaults().Denominator(); !ok {
		return fmt.Errorf("deflection.criterion %q is not usable", cfg.Deflection.Criterion)
	}
	return nil
}

func supported(lang string) bool {
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// MaterialDefaults returns the configured material as request input.
func (c *Config) MaterialDefaults() engine.Material {
	return engine.Material{
		YieldStrength:  c.Material.YieldStrength,
		ElasticModulus: c.Material.ElasticModulus,
		MaterialFactor: c.Material.MaterialFactor,
	}
}

// GeometryDefaults returns the configured geometry defaults. Span and
// tributary width are always given by the request.
func (c *Config) GeometryDefaults() engine.Geometry {
	return engine.Geometry{BearingLength: c.Geometry.BearingLength}
}

// FactorDefaults returns the configured load factors.
func (c *Config) FactorDefaults() loads.Factors {
	return loads.Factors{
		Wind:    c.Factors.Wind,
		Dead:    c.Factors.Dead,
		Imposed: c.Factors.Imposed,
		Fixture: c.Factors.Fixture,
	}
}

// DeflectionDefaults returns the configured deflection criterion.
func (c *Config) DeflectionDefaults() engine.Deflection {
	return engine.Deflection{Criterion: c.Deflection.Criterion, Custom: c.Deflection.Custom}
}
