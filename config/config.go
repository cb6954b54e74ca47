// Initializing common application configuration
package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Assets AssetsConfig `mapstructure:"assets"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
}

type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type AssetsConfig struct {
	InputRoot     string `mapstructure:"input_root" validate:"required"`
	OutputRoot    string `mapstructure:"output_root" validate:"required"`
	HeroSubdir    string `mapstructure:"hero_subdir" validate:"required"`
	Widths        []int  `mapstructure:"widths" validate:"required,min=1,dive,gt=0"`
	WebPQuality   int    `mapstructure:"webp_quality" validate:"min=0,max=100"`
	AVIFQuality   int    `mapstructure:"avif_quality" validate:"min=0,max=100"`
	JPEGQuality   int    `mapstructure:"jpeg_quality" validate:"min=0,max=100"`
	RemoteBaseURL string `mapstructure:"remote_base_url" validate:"required,url"`
}

type KafkaConfig struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

// LoadConfig reads ./config/config.yaml when present. A missing config
// file is not an error: every parameter has a default, so the generator
// runs with no flags, no env vars and no file at all.
func LoadConfig() (*viper.Viper, error) {

	viperInstance := viper.New()

	setDefaults(viperInstance)

	viperInstance.AddConfigPath("./config")
	viperInstance.SetConfigName("config")
	viperInstance.SetConfigType("yaml")

	err := viperInstance.ReadInConfig()

	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return viperInstance, nil
		}
		return nil, err
	}
	return viperInstance, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {

	var c Config

	err := v.Unmarshal(&c)
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.Struct(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "text")

	v.SetDefault("assets.input_root", ".assets")
	v.SetDefault("assets.output_root", "assets/optimized")
	v.SetDefault("assets.hero_subdir", "hero")
	v.SetDefault("assets.widths", []int{640, 1280, 1920})
	v.SetDefault("assets.webp_quality", 80)
	v.SetDefault("assets.avif_quality", 65)
	v.SetDefault("assets.jpeg_quality", 80)
	v.SetDefault("assets.remote_base_url", "https://assets.example.com")

	v.SetDefault("kafka.brokers", "")
	v.SetDefault("kafka.topic", "image-variants")
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
