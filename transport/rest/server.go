package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type matchUseCase interface {
	CreateMatch(ctx context.Context, creatorName, creatorID string) (*entity.Match, error)
	JoinMatch(ctx context.Context, matchID, joinerName, joinerID string) (*entity.Match, error)
	SubmitMove(ctx context.Context, matchID string, position int, playerID string) (*entity.Match, error)
	LeaveMatch(ctx context.Context, matchID string) error
	GetMatch(ctx context.Context, matchID string) (*entity.Match, error)
	WatchOpenMatches(ctx context.Context) <-chan entity.LobbyEvent
}

type Server struct {
	logger  *slog.Logger
	matches matchUseCase
	router  *gin.Engine
}

func New(logger *slog.Logger, matches matchUseCase, allowedOrigins []string) *Server {
	server := &Server{
		logger:  logger.With("component", "rest"),
		matches: matches,
		router:  gin.New(),
	}

	server.router.Use(gin.Recovery(), server.requestLogger())

	if len(allowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = allowedOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		server.router.Use(cors.New(corsConfig))
	}

	server.router.GET("/ping", pingHandler)

	api := server.router.Group("/api/matches")
	{
		api.GET("", server.listOpenMatches)
		api.POST("", server.createMatch)
		api.GET("/:id", server.getMatch)
		api.POST("/:id/join", server.joinMatch)
		api.POST("/:id/moves", server.submitMove)
		api.DELETE("/:id", server.leaveMatch)
	}

	return server
}

func (that *Server) Handler() http.Handler {
	return that.router
}

// Start serves HTTP until ctx is done and returns once shutdown has drained.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	// ListenAndServe returns as soon as Shutdown starts; wait for in-flight handlers.
	<-shutdownDone

	return nil
}

func (that *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		that.logger.Debug("request served",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
