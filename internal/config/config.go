package config

import (
	"io"
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server     Server     `yaml:"server"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
}

type Server struct {
	Port          string `yaml:"port"`
	DataFile      string `yaml:"dataFile"`
	AdminToken    string `yaml:"adminToken"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Cloudinary struct {
	CloudName    string `yaml:"cloudName"`
	UploadPreset string `yaml:"uploadPreset"`
}

// Load reads the yaml config at path, then applies environment overrides and
// defaults. A missing file is not an error: env-only deployments are the
// common case.
func Load(path string) (Config, error) {
	var config Config

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil && err != io.EOF {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Server.DataFile = getEnv("DATA_FILE", config.Server.DataFile)
	config.Server.AdminToken = getEnv("ADMIN_TOKEN", config.Server.AdminToken)
	config.Server.RedisAddr = getEnv("REDIS_ADDR", config.Server.RedisAddr)
	config.Cloudinary.CloudName = getEnv("CLOUDINARY_CLOUD_NAME", config.Cloudinary.CloudName)
	config.Cloudinary.UploadPreset = getEnv("CLOUDINARY_UPLOAD_PRESET", config.Cloudinary.UploadPreset)

	if config.Server.Port == "" {
		config.Server.Port = "8787"
	}
	if config.Server.DataFile == "" {
		config.Server.DataFile = "data.json"
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
