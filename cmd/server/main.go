// cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/P7yush-Singh/CrSaathi/internal/config"
	"github.com/P7yush-Singh/CrSaathi/internal/controller"
	"github.com/P7yush-Singh/CrSaathi/internal/db"
	"github.com/P7yush-Singh/CrSaathi/internal/mailer"
	"github.com/P7yush-Singh/CrSaathi/internal/notify"
	"github.com/P7yush-Singh/CrSaathi/internal/queue"
	"github.com/P7yush-Singh/CrSaathi/internal/ratelimit"
	"github.com/P7yush-Singh/CrSaathi/internal/repository"
	"github.com/P7yush-Singh/CrSaathi/internal/service"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}
	cfg := config.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()

	limiter := ratelimit.New(cfg.RateWindow, cfg.RateMax)
	defer limiter.Stop()

	mail := mailer.New(cfg.ResendAPIKey, cfg.SenderEmail)
	sender := &notify.EmailSender{Mailer: mail, OpsEmail: cfg.AdminEmail}

	// With a broker configured, notification jobs go to RabbitMQ and
	// cmd/worker owns delivery. Otherwise an in-process dispatcher
	// sends them and drains on shutdown.
	var notifier notify.Notifier
	if cfg.AMQPURL != "" {
		pub, err := queue.NewPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("failed to connect to queue: %v", err)
		}
		defer pub.Close()
		notifier = pub
		log.Println("📨 Notifications routed through RabbitMQ")
	} else {
		disp := notify.NewDispatcher(sender, cfg.NotifyQueueSize)
		defer disp.Close()
		notifier = disp
	}

	callbackRepo := &repository.CallbackRepository{DB: conn}
	cardRepo := &repository.CardRepository{DB: conn}

	callbackService := &service.CallbackService{
		Repo:     callbackRepo,
		Limiter:  limiter,
		Notifier: notifier,
	}

	callbackController := &controller.CallbackController{
		CallbackService: callbackService,
		Production:      cfg.Production,
	}
	cardController := &controller.CardController{Repo: cardRepo}
	healthController := &controller.HealthController{DB: conn}

	r := chi.NewRouter()
	r.Use(controller.Recover(cfg.Production))

	// Callback routes
	r.Post("/api/callbacks", callbackController.SubmitCallback)
	r.Get("/api/callbacks", callbackController.ListCallbacks)
	r.Patch("/api/callbacks/{id}", callbackController.UpdateCallback)

	// Catalog + health
	r.Get("/api/cards", cardController.GetCards)
	r.Get("/api/test-db", healthController.TestDB)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Println("🚀 Server running on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(shutdownCtx)
}
