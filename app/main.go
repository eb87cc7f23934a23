package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"memberhub/config"
	"memberhub/services/member/delivery"
	"memberhub/services/member/repository"
	"memberhub/services/member/storage"
	"memberhub/services/member/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Fatalf("Error loading .env file")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	// CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if _, err := config.BootDB(); err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}

	gormDB, err := config.BootGorm()
	if err != nil {
		log.Fatalf("Failed to boot gorm: %v", err)
		return
	}

	timeout := 10 * time.Second

	stager := storage.NewAssetStager(config.GetUploadDir(), log)
	memberNoGen := usecase.NewMemberNoGenerator(config.GetMemberNoPrefix())

	memberRepo := repository.NewMemberRepository(pool)
	businessRepo := repository.NewBusinessProfileRepository(gormDB)
	familyRepo := repository.NewFamilyRecordRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)
	notificationRepo := repository.NewNotificationRepository(gormDB)
	authRepo := repository.NewAuthRepository(gormDB)

	memberUC := usecase.NewMemberUseCase(memberRepo, stager, memberNoGen, log, timeout)
	businessUC := usecase.NewBusinessProfileUseCase(businessRepo, stager, timeout)
	familyUC := usecase.NewFamilyRecordUseCase(familyRepo, memberRepo, timeout)
	ratingUC := usecase.NewRatingUseCase(ratingRepo, timeout)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, timeout)
	authUC := usecase.NewAuthUseCase(authRepo, timeout)

	delivery.NewMemberHandler(app, memberUC, stager)
	delivery.NewBusinessProfileHandler(app, businessUC, stager)
	delivery.NewFamilyRecordHandler(app, familyUC)
	delivery.NewRatingHandler(app, ratingUC)
	delivery.NewNotificationHandler(app, notificationUC)
	delivery.NewAuthHandler(app, authUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server for Public on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, os.Kill)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	pool.Close()

	wg.Wait()
	log.Info("Server shut down gracefully")
}
