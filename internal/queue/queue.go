// internal/queue/queue.go
package queue

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

// QueueName is the durable RabbitMQ queue carrying notification jobs
// from the intake server to cmd/worker.
const QueueName = "callback_notifications"

// Notification job kinds.
const (
	KindCustomer   = "customer"
	KindOperations = "operations"
)

// NotificationJob is the wire format for one queued notification.
type NotificationJob struct {
	Kind    string                 `json:"kind"`
	Request *model.CallbackRequest `json:"request"`
}

// Publisher implements notify.Notifier over RabbitMQ. Used instead of
// the in-process dispatcher when AMQP_URL is configured, so a separate
// worker can own email delivery.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if _, err := Declare(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

// Declare sets up the durable notifications queue on ch.
func Declare(ch *amqp.Channel) (amqp.Queue, error) {
	return ch.QueueDeclare(
		QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

func (p *Publisher) NotifyCustomer(req *model.CallbackRequest) {
	p.publish(KindCustomer, req)
}

func (p *Publisher) NotifyOperations(req *model.CallbackRequest) {
	p.publish(KindOperations, req)
}

// publish is best-effort: a broker failure is logged, never surfaced
// to the request path.
func (p *Publisher) publish(kind string, req *model.CallbackRequest) {
	body, err := json.Marshal(NotificationJob{Kind: kind, Request: req})
	if err != nil {
		log.Println("⚠️ failed to encode notification job:", err)
		return
	}

	err = p.ch.Publish(
		"",
		QueueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		log.Println("⚠️ failed to publish notification job:", err)
	}
}

func (p *Publisher) Close() {
	if err := p.ch.Close(); err != nil {
		log.Println("⚠️ failed to close queue channel:", err)
	}
	if err := p.conn.Close(); err != nil {
		log.Println("⚠️ failed to close queue connection:", err)
	}
}
