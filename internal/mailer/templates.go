// internal/mailer/templates.go
package mailer

import (
	"fmt"
	"html"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

const (
	CustomerSubject   = "We received your callback request - CreditSaathi"
	OperationsSubject = "New callback request - CreditSaathi"
)

// CustomerConfirmationHTML builds the confirmation body sent to the
// person who requested the callback.
func CustomerConfirmationHTML(name, opsEmail string) string {
	return fmt.Sprintf(`
    <div style="font-family:system-ui,Arial,Helvetica,sans-serif; color:#061526;">
      <h2>Hello %s,</h2>
      <p>Thanks, we received your callback request. An agent will contact you soon.</p>
      <p>If you didn't request this, ignore this email or contact us at %s.</p>
      <p>- CreditSaathi</p>
    </div>
  `, html.EscapeString(name), html.EscapeString(opsEmail))
}

// OperationsAlertHTML builds the internal alert body. Every field is
// escaped; the note and name are untrusted input.
func OperationsAlertHTML(req *model.CallbackRequest) string {
	return fmt.Sprintf(`
    <div style="font-family:system-ui,Arial,Helvetica,sans-serif; color:#061526;">
      <h3>New Callback Request</h3>
      <ul>
        <li><strong>Name:</strong> %s</li>
        <li><strong>Email:</strong> %s</li>
        <li><strong>Phone:</strong> %s</li>
        <li><strong>Note:</strong> %s</li>
        <li><strong>IP:</strong> %s</li>
      </ul>
      <p><a href="https://creditsaathi.in/callbacks">Open callbacks dashboard</a></p>
    </div>
  `,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Phone),
		html.EscapeString(req.Note),
		html.EscapeString(req.SourceIP),
	)
}
