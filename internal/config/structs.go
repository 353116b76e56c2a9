package config

// Config represents the complete configuration for the flatten tool.
// It covers all commands (transform, preview, serve) and supports loading
// from configuration files, environment variables, and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Estimation settings
	Estimator EstimatorConfig `mapstructure:"estimator" yaml:"estimator" json:"estimator"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Preview rendering configuration
	Preview PreviewConfig `mapstructure:"preview" yaml:"preview" json:"preview"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`
}

// EstimatorConfig contains homography estimation settings.
type EstimatorConfig struct {
	// Normalize enables the Hartley preconditioning stage (centroid removal
	// plus isotropic rescale) before solving. Off by default; it changes
	// numerical conditioning, not the mapping.
	Normalize bool `mapstructure:"normalize" yaml:"normalize" json:"normalize"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format" json:"format"`
	File      string `mapstructure:"file" yaml:"file" json:"file"`
	Precision int    `mapstructure:"precision" yaml:"precision" json:"precision"`
}

// PreviewConfig contains preview image rendering settings.
type PreviewConfig struct {
	Width       int    `mapstructure:"width" yaml:"width" json:"width"`
	Height      int    `mapstructure:"height" yaml:"height" json:"height"`
	GridSteps   int    `mapstructure:"grid_steps" yaml:"grid_steps" json:"grid_steps"`
	SourceColor string `mapstructure:"source_color" yaml:"source_color" json:"source_color"`
	DestColor   string `mapstructure:"dest_color" yaml:"dest_color" json:"dest_color"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string `mapstructure:"host" yaml:"host" json:"host"`
	Port            int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin      string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	TimeoutSec      int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
}
