package main

import (
	"context"
	"log"

	"arogya-chat-be/internal/bootstrap"
	"arogya-chat-be/internal/config"
	"arogya-chat-be/internal/server"
	"arogya-chat-be/internal/tracer"
	"arogya-chat-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// One repair sweep at boot finishes exchanges cut short by a crash.
	go func() {
		repaired, err := container.RepairService.RepairOnce(context.Background())
		if err != nil {
			log.Printf("Background Repair Error: %v", err)
			return
		}
		if repaired > 0 {
			log.Printf("Background: Repaired %d dangling exchanges", repaired)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
