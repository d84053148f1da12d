package config

// GroupConfig maps a reported demographic group to a column in the
// demographics table.
type GroupConfig struct {
	Name   string `yaml:"name" validate:"required"`
	Column string `yaml:"column" validate:"required"`
}

// ScenarioConfig describes a single aggregation run, e.g. AM hospital
// access or daycare-seat access.
type ScenarioConfig struct {
	Name              string  `yaml:"name" validate:"required"`
	Mode              string  `yaml:"mode" validate:"required,oneof=minimum_time cumulative"`
	TravelTimesPath   string  `yaml:"travelTimes" validate:"required"`
	DemographicsPath  string  `yaml:"demographics" validate:"required"`
	OpportunitiesPath string  `yaml:"opportunities"`
	MissingPenalty    float64 `yaml:"missingPenalty" validate:"gte=0"` // minutes; 0 = derive from data at run time
	CutoffMinutes     float64 `yaml:"cutoffMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	LogMode   string           `yaml:"logMode"`
	Groups    []GroupConfig    `yaml:"groups" validate:"required,min=1,dive"`
	Scenarios []ScenarioConfig `yaml:"scenarios" validate:"required,min=1"`
}
