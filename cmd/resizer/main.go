package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denismitr/resizefn/cmd/initialize"
	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/denismitr/resizefn/internal/resizer"
)

var (
	migrate = flag.Bool("migrate", false, "Run the migrations?")
)

func main() {
	flag.Parse()

	initialize.DotEnv()

	log := initialize.Logger()
	m := manipulator.New(initialize.ManipulatorConfigFromEnv())

	var archive *resizer.Archive
	if initialize.ArchiveEnabled() {
		registry, closeRegistry := initialize.MongoRegistry(30*time.Second, *migrate)
		defer closeRegistry()

		storage := initialize.S3StorageFromEnv()
		archive = resizer.NewArchive(initialize.Namespace(), storage, registry, log, 30*time.Second)
	}

	server := resizer.NewServer(initialize.ServerConfigFromEnv(), log, m, archive)

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGTERM, syscall.SIGINT)

	if err := server.Run(stopCh, 10*time.Second); err != nil {
		panic(err)
	}
}
