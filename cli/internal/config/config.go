package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration
type Config struct {
	ShapesPath        string
	ContextPath       string
	OutputPath        string
	PackageName       string
	DslName           string
	ValidationEnabled bool
	LanguageTags      bool
}

// LoadConfig loads configuration from config files, .env files, and the
// SHACLGEN_* environment.
func LoadConfig() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".shaclgen")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "shaclgen"))

	viper.SetEnvPrefix("SHACLGEN")
	viper.AutomaticEnv()

	viper.SetDefault("shapes_path", "shapes.ttl")
	viper.SetDefault("context_path", "")
	viper.SetDefault("output_path", "./ontology")
	viper.SetDefault("package", "ontology")
	viper.SetDefault("dsl_name", "Instances")
	viper.SetDefault("validation", true)
	viper.SetDefault("language_tags", false)

	// Config file is optional.
	_ = viper.ReadInConfig()

	// .env then .env.local, the local file winning.
	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		ShapesPath:        viper.GetString("shapes_path"),
		ContextPath:       viper.GetString("context_path"),
		OutputPath:        viper.GetString("output_path"),
		PackageName:       viper.GetString("package"),
		DslName:           viper.GetString("dsl_name"),
		ValidationEnabled: viper.GetBool("validation"),
		LanguageTags:      viper.GetBool("language_tags"),
	}

	return cfg, nil
}
