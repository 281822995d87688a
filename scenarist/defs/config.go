package defs

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Glucose GlucoseConfig `yaml:"glucose"`
	Logger  *zap.Logger   `yaml:"_,omitempty" validate:"-"`
}

type OutputConfig struct {
	Dir string `yaml:"dir" default:"." validate:"required"`
}

// GlucoseConfig is the target range (mg/dL) reported in the generation
// summary. It has no effect on the generated scenario.
type GlucoseConfig struct {
	Low  float64 `yaml:"low" default:"70" validate:"gt=0"`
	High float64 `yaml:"high" default:"180" validate:"gtfield=Low"`
}

var validate = validator.New()

// LoadConfig reads the yaml file at path, if any, and fills in defaults for
// everything left unset.
func LoadConfig(path string) (Config, error) {
	var config Config

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("unable to read config: %w", err)
		}
		if err = yaml.Unmarshal(file, &config); err != nil {
			return Config{}, fmt.Errorf("unable to parse config: %w", err)
		}
	}

	if err := defaults.Set(&config); err != nil {
		return Config{}, fmt.Errorf("unable to set config defaults: %w", err)
	}
	if err := validate.Struct(&config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
