package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig loads and validates the application configuration. An empty
// path falls back to config.yml in the working directory.
func LoadAppConfig(path string) (AppConfig, error) {
	paths := []string{path, "config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return AppConfig{}, err
	}
	for i, s := range cfg.Scenarios {
		if err := v.Struct(s); err != nil {
			return AppConfig{}, err
		}
		if s.Mode == "cumulative" && s.CutoffMinutes <= 0 {
			return AppConfig{}, fmt.Errorf("scenario %q: cumulative mode requires cutoffMinutes > 0", s.Name)
		}
		for j := i + 1; j < len(cfg.Scenarios); j++ {
			if cfg.Scenarios[j].Name == s.Name {
				return AppConfig{}, fmt.Errorf("duplicate scenario name %q", s.Name)
			}
		}
	}
	if cfg.LogMode == "" {
		cfg.LogMode = "development"
	}
	return cfg, nil
}

// SelectScenario chooses a scenario by name; fallback to first.
func (c AppConfig) SelectScenario(name string) (ScenarioConfig, error) {
	if name != "" {
		for _, s := range c.Scenarios {
			if s.Name == name {
				return s, nil
			}
		}
		return ScenarioConfig{}, fmt.Errorf("no scenario named %q", name)
	}
	return c.Scenarios[0], nil
}
