package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"memoria/internal/infrastructure/database"
	"memoria/internal/infrastructure/minio"
	"memoria/internal/infrastructure/session"
	"memoria/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment   string               `yaml:"environment"`
	Default       DefaultConfig        `yaml:"default"`
	DBConfig      database.Config      `yaml:"db_config"`
	Session       session.Config       `yaml:"session"`
	MinIOClient   minio.ClientConfig   `yaml:"minio_client"`
	MinIOUploader minio.UploaderConfig `yaml:"minio_uploader"`
	Logger        logger.Config        `yaml:"logger"`
}

type DefaultConfig struct {
	Address string `yaml:"address"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.Session.URI = os.Getenv("SESSION_STORE_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Default.Address == "" {
		return errors.New("default.address must be set")
	}
	if c.DBConfig.DBName == "" {
		return errors.New("db_config.db_name must be set")
	}
	if c.MinIOUploader.Bucket == "" {
		return errors.New("minio_uploader.bucket must be set")
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name must be set")
	}

	return nil
}
