package initialize

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/denismitr/goenv"
	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/denismitr/resizefn/internal/registry/mgoregistry"
	"github.com/denismitr/resizefn/internal/resizer"
	"github.com/denismitr/resizefn/internal/storage/s3storage"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func Logger() *logrus.Logger {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	}

	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			panic(err)
		}

		log.SetLevel(level)
	}

	return log
}

func ServerConfigFromEnv() resizer.Config {
	return resizer.Config{
		Port:          stringFromEnvOrDefault("RESIZER_PORT", resizer.DefaultPort),
		MaxUploadSize: stringFromEnvOrDefault("RESIZER_MAX_UPLOAD", resizer.DefaultMaxUploadSize),
		ReadTimeout:   30 * time.Second,
		WriteTimeout:  30 * time.Second,
	}
}

func ManipulatorConfigFromEnv() *manipulator.Config {
	cfg := &manipulator.Config{
		Quality:      intFromEnvOrDefault("RESIZER_JPEG_QUALITY", manipulator.DefaultQuality),
		MaxDimension: intFromEnvOrDefault("RESIZER_MAX_DIMENSION", manipulator.DefaultMaxDimension),
		Filter:       stringFromEnvOrDefault("RESIZER_FILTER", manipulator.DefaultFilter),
	}

	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	return cfg
}

func ArchiveEnabled() bool {
	return goenv.IsTruthy("RESIZER_ARCHIVE")
}

func Namespace() string {
	return goenv.MustString("S3_BUCKET")
}

func S3StorageFromEnv() *s3storage.RemoteStorage {
	cfg := s3storage.Config{
		AccessKey:        goenv.MustString("S3_ACCESS_KEY_ID"),
		AccessSecret:     goenv.MustString("S3_SECRET_ACCESS_KEY"),
		AccessToken:      "",
		Region:           goenv.MustString("S3_REGION"),
		Endpoint:         goenv.MustString("S3_ENDPOINT"),
		S3ForcePathStyle: goenv.IsTruthy("S3_FORCE_PATH_STYLE"),
		EnableSSL:        goenv.IsTruthy("S3_SSL"),
	}

	storage, err := s3storage.New(cfg)
	if err != nil {
		panic(err)
	}

	return storage
}

func MongoRegistry(connectionTimeout time.Duration, migrate bool) (*mgoregistry.MongoRegistry, func()) {
	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(goenv.MustString("MONGODB_URL")))
	if err != nil {
		panic(err)
	}

	registry := mgoregistry.New(client, mgoregistry.Config{
		DB:                goenv.MustString("MONGODB_DATABASE"),
		RendersCollection: "renders",
	})

	if migrate {
		if err := registry.Migrate(ctx); err != nil {
			panic(err)
		}
	}

	return registry, func() {
		if err := client.Disconnect(context.Background()); err != nil {
			panic(err)
		}
	}
}

// DotEnv loads .env files when present, the environment always wins
func DotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}

		if err := godotenv.Load(f); err != nil {
			panic("Error loading " + f + " file")
		}
	}
}

func stringFromEnvOrDefault(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return defaultValue
}

func intFromEnvOrDefault(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultValue
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		panic(key + " must be an integer")
	}

	return n
}
