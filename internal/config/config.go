// Package config provides configuration management for the matchtips application.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Scoring ScoringConfig `mapstructure:"scoring" validate:"required"`
	Render  RenderConfig  `mapstructure:"render"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ScoringConfig represents scoring engine configuration
type ScoringConfig struct {
	Variant       string  `mapstructure:"variant" validate:"required,variant"`
	WeightAttack  float64 `mapstructure:"weight_attack" validate:"gt=0,lte=10"`
	WeightDefense float64 `mapstructure:"weight_defense" validate:"gt=0,lte=10"`
	TopN          int     `mapstructure:"top_n" validate:"required,gte=1,lte=12"`
	ChartPolicy   string  `mapstructure:"chart_policy" validate:"required,chartpolicy"`
}

// RenderConfig represents terminal output configuration
type RenderConfig struct {
	Width            int  `mapstructure:"width" validate:"gte=0,lte=200"`
	ShowExplanations bool `mapstructure:"show_explanations"`
	ShowChart        bool `mapstructure:"show_chart"`
	ShowSummary      bool `mapstructure:"show_summary"`
}

// MetricsConfig represents metrics configuration
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
