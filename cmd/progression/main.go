package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mindagrow/progression/internal/repository"
	"github.com/mindagrow/progression/internal/service"
	"github.com/mindagrow/progression/pkg/catalog"
	"github.com/mindagrow/progression/pkg/cleanup"
	"github.com/mindagrow/progression/pkg/clock"
	"github.com/mindagrow/progression/pkg/config"
)

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	loc, err := time.LoadLocation(cfg.GetStringDefault("PROGRESSION_TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	clk := clock.New(loc)

	missionsCat := catalog.Default()
	if path := cfg.GetString("MISSION_CATALOG_PATH"); path != "" {
		missionsCat, err = catalog.Load(path)
		if err != nil {
			log.Fatal("loading mission catalog error: " + err.Error())
		}
	}

	streakService := service.NewStreakService(repository.NewStreaksRepo(&dbCfg), clk)
	missionService := service.NewMissionService(repository.NewMissionProgressRepo(&dbCfg), missionsCat, clk)
	levelsRepo := repository.NewLevelsRepo(&dbCfg)
	levelService := service.NewLevelService(levelsRepo)
	leaderboardService := service.NewLeaderboardService(repository.NewLeaderboardRepo(&dbCfg), levelsRepo, clk)
	// Constructing the coordinator faults on broken wiring before the daemon reports ready
	service.NewProgressionService(streakService, missionService, levelService, leaderboardService)

	sched, err := service.NewMaintenanceScheduler(streakService, leaderboardService, loc)
	if err != nil {
		log.Fatal("creating maintenance scheduler error: " + err.Error())
	}
	sched.Start()
	slog.Info("progression engine running", slog.String("timezone", loc.String()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cleanup.CleanUp()
}
