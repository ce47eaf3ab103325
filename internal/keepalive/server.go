package keepalive

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// DutyCounter reports how many officers are on duty right now.
type DutyCounter interface {
	OnDuty() int
}

// Server answers uptime pings from the hosting platform.
type Server struct {
	srv *http.Server
	log *slog.Logger
}

func New(addr string, counter DutyCounter, log *slog.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(counter),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

func NewRouter(counter DutyCounter) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "duty bot is alive")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"on_duty": counter.OnDuty(),
		})
	})

	return r
}

// Run serves until ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errch := make(chan error, 1)
	go func() {
		s.log.Info("keep-alive server listening", "addr", s.srv.Addr)
		errch <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errch:
		return fmt.Errorf("keep-alive server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("keep-alive server shutdown: %w", err)
	}

	if err := <-errch; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
