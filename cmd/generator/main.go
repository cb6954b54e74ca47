package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"imagegen/config"
	"imagegen/internal/database"
	"imagegen/internal/entity"
	"imagegen/internal/generator"
	"imagegen/internal/pkg/kafka"
	"imagegen/internal/pkg/processor"
	"imagegen/internal/pkg/storage"
)

// Source images are fixed at process start; the generator takes no
// arguments.
var heroImages = []entity.HeroImageSpec{
	{Name: "hero1", Ext: ".jpg"},
	{Name: "hero2", Ext: ".jpg"},
	{Name: "hero3", Ext: ".jpg"},
	{Name: "hero4", Ext: ".jpg"},
}

var singleImages = []entity.SingleImageSpec{
	{InputRelPath: "theater/peppino-impastato.png", OutputName: "peppino-impastato"},
}

func main() {
	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("error parsing config: %s", err.Error())
	}

	setupLogger(cfg)

	fileStorage := storage.NewFileStorage(cfg.Assets.OutputRoot)
	variantRepo := database.NewVariantRepository(fileStorage, cfg.Assets.HeroSubdir)
	imgProcessor := processor.NewImageProcessor()
	producer := kafka.NewProducer(config.GetEnv("KAFKA_BROKERS", cfg.Kafka.Brokers), cfg.Kafka.Topic)
	defer producer.Close()

	gen := generator.NewGenerator(cfg, variantRepo, imgProcessor, producer, heroImages, singleImages)

	if _, err := gen.Run(); err != nil {
		logrus.Errorf("generation failed: %s", err.Error())
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	if cfg.App.LogFormat == "json" {
		logrus.SetFormatter(new(logrus.JSONFormatter))
	}

	level, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
