// internal/notify/notify.go
package notify

import (
	"context"

	"github.com/P7yush-Singh/CrSaathi/internal/model"
)

// Notifier dispatches the two notifications for a stored callback
// request. Implementations must not block the caller and must keep
// delivery failures away from the request outcome.
type Notifier interface {
	NotifyCustomer(req *model.CallbackRequest)
	NotifyOperations(req *model.CallbackRequest)
}

// Sender performs the actual delivery of a single notification.
type Sender interface {
	SendCustomerConfirmation(ctx context.Context, req *model.CallbackRequest) error
	SendOperationsAlert(ctx context.Context, req *model.CallbackRequest) error
}
