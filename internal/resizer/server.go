package resizer

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	cfg         Config
	logger      *logrus.Logger
	e           *echo.Echo
	manipulator *manipulator.Manipulator
	archive     *Archive
}

// NewServer - archive is optional, with a nil archive renders are not persisted
func NewServer(cfg Config, logger *logrus.Logger, m *manipulator.Manipulator, archive *Archive) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = makeErrorHandler(logger)
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Server.ReadHeaderTimeout = 2 * time.Second

	e.Use(requestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.DefaultCORSConfig))
	e.Use(middleware.BodyLimit(cfg.maxUploadSize()))

	s := &Server{
		cfg:         cfg,
		logger:      logger,
		e:           e,
		manipulator: m,
		archive:     archive,
	}

	e.Match([]string{http.MethodGet, http.MethodPost}, "/api/ResizeImage", s.resizeImage)
	e.GET("/api/renders/:id", s.getRender)
	e.GET("/health", s.health)

	return s
}

// Run the server
func (s *Server) Run(stopCh <-chan os.Signal, shutDownTime time.Duration) error {
	s.logger.Println("Resizer server : Starting")

	serverError := make(chan error, 1)
	go func() {
		if err := s.e.Start(s.cfg.port()); err != nil && err != http.ErrServerClosed {
			serverError <- errors.Wrap(err, "http server error")
		}
	}()

	s.logger.Println("Resizer server : Started on " + s.cfg.port())

	select {
	case err := <-serverError:
		return err
	case <-stopCh:
		s.logger.Println("Resizer server : Received stop signal")

		ctx, cancel := context.WithTimeout(context.Background(), shutDownTime)
		defer cancel()

		if stopErr := s.e.Shutdown(ctx); stopErr != nil {
			if closeErr := s.e.Close(); closeErr != nil {
				return errors.Wrap(closeErr, stopErr.Error())
			}

			return errors.Wrap(stopErr, "graceful shutdown failed")
		}

		if s.archive != nil {
			s.archive.wait()
		}

		return nil
	}
}
