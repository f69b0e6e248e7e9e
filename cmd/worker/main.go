// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/joho/godotenv"
	"github.com/streadway/amqp"

	"github.com/P7yush-Singh/CrSaathi/internal/config"
	"github.com/P7yush-Singh/CrSaathi/internal/mailer"
	"github.com/P7yush-Singh/CrSaathi/internal/notify"
	"github.com/P7yush-Singh/CrSaathi/internal/queue"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}
	cfg := config.Parse()

	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL must be set for the notification worker")
	}

	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		log.Fatal("Failed to connect to RabbitMQ:", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("Failed to open a channel:", err)
	}
	defer ch.Close()

	q, err := queue.Declare(ch)
	if err != nil {
		log.Fatal("Failed to declare queue:", err)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",
		false, // autoAck = false for reliability
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		log.Fatal("Failed to register consumer:", err)
	}

	mail := mailer.New(cfg.ResendAPIKey, cfg.SenderEmail)
	sender := &notify.EmailSender{Mailer: mail, OpsEmail: cfg.AdminEmail}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job queue.NotificationJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Println("Invalid job:", err)
				d.Ack(false)
				continue
			}

			if err := deliver(job, sender); err != nil {
				log.Println("Failed to send notification:", err)
				// One redelivery, then drop; emails are best-effort.
				if !d.Redelivered {
					d.Nack(false, true)
					continue
				}
				log.Println("Notification permanently failed for request:", job.Request.ID)
			}

			d.Ack(false)
		}
	}()

	log.Println("Worker running, waiting for notification jobs...")
	<-forever
}

func deliver(job queue.NotificationJob, sender notify.Sender) error {
	if job.Request == nil {
		log.Println("⚠️ job has no request payload, dropping")
		return nil
	}

	switch job.Kind {
	case queue.KindCustomer:
		return sender.SendCustomerConfirmation(context.Background(), job.Request)
	case queue.KindOperations:
		return sender.SendOperationsAlert(context.Background(), job.Request)
	}
	log.Println("⚠️ unknown job kind, dropping:", job.Kind)
	return nil
}
