package config

// DataConfig points at the delimited trip table
type DataConfig struct {
	Path      string `yaml:"path" mapstructure:"path" validate:"required"`
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter" validate:"omitempty,len=1"`
}

// QueryConfig contains query defaults
type QueryConfig struct {
	DefaultSort string `yaml:"defaultSort" mapstructure:"defaultSort" validate:"omitempty,oneof=fare timing rating duration"`
}

// OutputConfig controls how result sets are rendered
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=table json"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Data   DataConfig   `yaml:"data" mapstructure:"data"`
	Query  QueryConfig  `yaml:"query" mapstructure:"query"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// Comma returns the configured field delimiter as a rune, defaulting to ','.
func (d DataConfig) Comma() rune {
	for _, r := range d.Delimiter {
		return r
	}
	return ','
}
