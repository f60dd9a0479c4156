package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadStorage.
const (
	EnvS3Endpoint  = "SECFORGE_S3_ENDPOINT"
	EnvS3Region    = "SECFORGE_S3_REGION"
	EnvS3AccessKey = "SECFORGE_S3_ACCESS_KEY"
	EnvS3SecretKey = "SECFORGE_S3_SECRET_KEY"
	EnvS3Bucket    = "SECFORGE_S3_BUCKET"
	EnvS3UseSSL    = "SECFORGE_S3_USE_SSL"
)

// DefaultS3Region is used when no region is configured.
const DefaultS3Region = "us-east-1"

// StorageConfig holds the S3-compatible object storage settings used to
// upload generated archives.
type StorageConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LoadStorage reads storage settings from the environment after loading
// the given dotenv files (".env" when none are named). Missing dotenv files
// are ignored; variables already set in the environment take precedence.
func LoadStorage(envFiles ...string) (StorageConfig, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return StorageConfig{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	useSSL := true
	if raw := strings.TrimSpace(os.Getenv(EnvS3UseSSL)); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return StorageConfig{}, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvS3UseSSL, raw)
		}
		useSSL = v
	}

	return StorageConfig{
		Endpoint:  strings.TrimSpace(os.Getenv(EnvS3Endpoint)),
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv(EnvS3Region)), DefaultS3Region),
		AccessKey: strings.TrimSpace(os.Getenv(EnvS3AccessKey)),
		SecretKey: strings.TrimSpace(os.Getenv(EnvS3SecretKey)),
		Bucket:    strings.TrimSpace(os.Getenv(EnvS3Bucket)),
		UseSSL:    useSSL,
	}, nil
}

// Check reports ErrStorageNotConfigured naming every missing setting.
func (s StorageConfig) Check() error {
	var missing []string
	if s.Endpoint == "" {
		missing = append(missing, EnvS3Endpoint)
	}
	if s.AccessKey == "" {
		missing = append(missing, EnvS3AccessKey)
	}
	if s.SecretKey == "" {
		missing = append(missing, EnvS3SecretKey)
	}
	if s.Bucket == "" {
		missing = append(missing, EnvS3Bucket)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: set %s", ErrStorageNotConfigured, strings.Join(missing, ", "))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
