package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/team-roster/internal/config"
	"github.com/bagdasarian/team-roster/internal/db"
	"github.com/bagdasarian/team-roster/internal/handler"
	"github.com/bagdasarian/team-roster/internal/handler/server"
	"github.com/bagdasarian/team-roster/internal/repository/postgres"
	"github.com/bagdasarian/team-roster/internal/service"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	database := db.MustLoad(cfg)
	log.Info().Msg("successfully connected to database")
	defer database.Close()

	clock := clockwork.NewRealClock()

	teamRepo := postgres.NewTeamRepository(database)
	userRepo := postgres.NewUserRepository(database)

	teamService := service.NewTeamService(database, teamRepo, userRepo, clock)
	userService := service.NewUserService(userRepo)
	reportService := service.NewReportService(teamRepo, userRepo, clock)

	h := handler.NewHandler(teamService, userService, reportService)
	srv := server.NewServer(h, cfg.HTTPAddr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
}
