package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nutritrack/internal/app"
	"nutritrack/internal/app/deps"
	"nutritrack/internal/app/services"
	dl "nutritrack/internal/core/domain/logging"
	schedulereminders "nutritrack/internal/core/services/schedule_reminders"
	"nutritrack/internal/db"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	migrate(deps)

	services := services.InitServices(deps)
	scheduleOnBoot(deps, services)

	httpServer := app.InitHttpServer(deps, services)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func migrate(deps *deps.Deps) {
	if err := db.Migrate(deps.Config.PostgresqlURL, deps.Config.MigrationsPath); err != nil {
		deps.Logger.Error(context.Background(), "Could not apply migrations.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "Migrations applied.", dl.Entry("path", deps.Config.MigrationsPath))
}

func scheduleOnBoot(deps *deps.Deps, s *services.Services) {
	result, err := s.ScheduleReminders.Run(context.Background(), schedulereminders.Input{})
	if err != nil {
		// Keep serving; the next settings update re-applies the schedule.
		dl.Error(context.Background(), deps.Logger, err, dl.Entry("operation", "scheduleOnBoot"))
		return
	}
	deps.Logger.Info(context.Background(), "Reminders scheduled.", dl.Entry("armed", len(result.Armed)))
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("timeZone", deps.Location.String()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	deps.Scheduler.CancelAll()
	deps.Logger.Info(ctx, "Reminder timers cancelled.")

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
