// internal/notify/dispatcher.go
package notify

import (
	"context"
	"log"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

type jobKind int

const (
	customerJob jobKind = iota
	operationsJob
)

type job struct {
	kind jobKind
	req  *model.CallbackRequest
}

// Dispatcher is the in-process Notifier: a bounded job queue consumed
// by a single background worker. Enqueueing never blocks the request
// path; a full queue drops the job with a log line. Close drains the
// pending jobs before returning so notifications survive a graceful
// shutdown.
type Dispatcher struct {
	sender Sender
	jobs   chan job
	done   chan struct{}
}

func NewDispatcher(sender Sender, queueSize int) *Dispatcher {
	if queueSize < 1 {
		queueSize = 1
	}
	d := &Dispatcher{
		sender: sender,
		jobs:   make(chan job, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) NotifyCustomer(req *model.CallbackRequest) {
	d.enqueue(job{kind: customerJob, req: req})
}

func (d *Dispatcher) NotifyOperations(req *model.CallbackRequest) {
	d.enqueue(job{kind: operationsJob, req: req})
}

func (d *Dispatcher) enqueue(j job) {
	select {
	case d.jobs <- j:
	default:
		log.Println("⚠️ notification queue full, dropping job for request", j.req.ID)
	}
}

// Close stops accepting jobs and waits for the worker to drain the
// queue. Must not be called concurrently with NotifyCustomer or
// NotifyOperations.
func (d *Dispatcher) Close() {
	close(d.jobs)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for j := range d.jobs {
		d.deliver(j)
	}
}

// deliver runs one notification with its own failure containment: an
// error or panic here is logged and cannot reach the other
// notification or the already-sent response.
func (d *Dispatcher) deliver(j job) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Println("⚠️ notification panicked (non-fatal):", rec)
		}
	}()

	var err error
	switch j.kind {
	case customerJob:
		err = d.sender.SendCustomerConfirmation(context.Background(), j.req)
	case operationsJob:
		err = d.sender.SendOperationsAlert(context.Background(), j.req)
	}
	if err != nil {
		log.Printf("⚠️ notification failed (non-fatal): request=%s kind=%d err=%v\n", j.req.ID, j.kind, err)
	}
}
