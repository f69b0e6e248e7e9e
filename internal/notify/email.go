// internal/notify/email.go
package notify

import (
	"context"
	"log"

	"github.com/P7yush-Singh/CrSaathi/internal/mailer"
	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

// EmailSender delivers notifications as transactional email.
type EmailSender struct {
	Mailer   *mailer.Client
	OpsEmail string
}

func (s *EmailSender) SendCustomerConfirmation(ctx context.Context, req *model.CallbackRequest) error {
	html := mailer.CustomerConfirmationHTML(req.Name, s.OpsEmail)
	return s.Mailer.Send(ctx, req.Email, mailer.CustomerSubject, html)
}

func (s *EmailSender) SendOperationsAlert(ctx context.Context, req *model.CallbackRequest) error {
	if s.OpsEmail == "" {
		log.Println("⚠️ ADMIN_EMAIL not configured, skipping operations notification")
		return nil
	}
	return s.Mailer.Send(ctx, s.OpsEmail, mailer.OperationsSubject, mailer.OperationsAlertHTML(req))
}
