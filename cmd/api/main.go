package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-assistant/config"
	_ "schedule-assistant/docs" // Swagger docs
	"schedule-assistant/internal/httpserver"
	"schedule-assistant/internal/middleware"
	"schedule-assistant/internal/model"
	"schedule-assistant/internal/schedule/repository"
	gcalRepo "schedule-assistant/internal/schedule/repository/gcalendar"
	"schedule-assistant/internal/schedule/repository/memory"
	"schedule-assistant/internal/schedule/usecase"
	"schedule-assistant/pkg/availability"
	"schedule-assistant/pkg/datemath"
	"schedule-assistant/pkg/gcalendar"
	"schedule-assistant/pkg/log"
)

// @title       Schedule Assistant API
// @description Finds open time slots in a day's schedule, books them, and syncs with Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Time handling
	dateMathParser, err := datemath.NewParser(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Fatalf(ctx, "Invalid scheduler timezone: %v", err)
	}
	clock := datemath.SystemClock{Location: dateMathParser.Location()}

	// 4. Availability resolver
	resolver, err := availability.New(availability.Options{
		DayStartHour:           cfg.Scheduler.DayStartHour,
		DayEndHour:             cfg.Scheduler.DayEndHour,
		LateDayHour:            cfg.Scheduler.LateDayHour,
		FallbackHour:           cfg.Scheduler.FallbackHour,
		FallbackChecksBookings: cfg.Scheduler.FallbackChecksBookings,
	})
	if err != nil {
		logger.Fatalf(ctx, "Invalid scheduler window: %v", err)
	}

	// 5. Schedule store
	var seed []model.Event
	if cfg.Scheduler.SeedSampleDay {
		seed = memory.SampleDay(clock.Now())
		logger.Infof(ctx, "Seeding %d sample events", len(seed))
	}
	scheduleRepo := memory.New(logger, seed...)

	// 6. Google Calendar (optional)
	var calendarSource repository.CalendarSource
	if cfg.GoogleCalendar.Enabled() {
		calendarClient, gcErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if gcErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", gcErr)
			logger.Warn(ctx, "Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarSource = gcalRepo.New(calendarClient, cfg.GoogleCalendar.CalendarID, cfg.Scheduler.Timezone, logger)
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Schedule UseCase
	scheduleUC := usecase.New(logger, scheduleRepo, calendarSource, resolver, dateMathParser, clock)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		ScheduleUseCase: scheduleUC,
		CalendarEnabled: calendarSource != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
