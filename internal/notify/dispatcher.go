package notify

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Sender delivers one email and returns the provider response
type Sender interface {
	Send(ctx context.Context, email Email) (map[string]interface{}, error)
}

// Result carries both provider responses back to the caller
type Result struct {
	AdminEmail map[string]interface{} `json:"adminEmail"`
	UserEmail  map[string]interface{} `json:"userEmail"`
}

// Dispatcher sends the two contact-form emails: an alert to the fixed
// administrative address and an acknowledgment to the submitter.
type Dispatcher struct {
	sender     Sender
	from       string
	adminEmail string
}

// NewDispatcher builds a Dispatcher sending from the given address to
// the given administrative recipient
func NewDispatcher(sender Sender, from, adminEmail string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from, adminEmail: adminEmail}
}

// Dispatch composes and sends both emails. The admin alert is sent
// first, matching the original flow; a failure on either send aborts
// with the provider error.
func (d *Dispatcher) Dispatch(ctx context.Context, n ContactNotification) (*Result, error) {
	adminHTML, err := AdminEmailHTML(n)
	if err != nil {
		return nil, err
	}
	adminResp, err := d.sender.Send(ctx, Email{
		From:    d.from,
		To:      []string{d.adminEmail},
		Subject: AdminSubject(n),
		HTML:    adminHTML,
	})
	if err != nil {
		return nil, err
	}

	userHTML, err := UserEmailHTML(n)
	if err != nil {
		return nil, err
	}
	userResp, err := d.sender.Send(ctx, Email{
		From:    d.from,
		To:      []string{n.Email},
		Subject: UserSubject,
		HTML:    userHTML,
	})
	if err != nil {
		return nil, err
	}

	return &Result{AdminEmail: adminResp, UserEmail: userResp}, nil
}

// DispatchAsync fires Dispatch on its own goroutine. Contact-form
// persistence never waits on, or fails because of, notification
// delivery; errors are logged and dropped.
func (d *Dispatcher) DispatchAsync(n ContactNotification) {
	go func() {
		if _, err := d.Dispatch(context.Background(), n); err != nil {
			log.WithFields(log.Fields{
				"email": n.Email,
				"error": err.Error(),
			}).Error("Contact notification dispatch failed")
		}
	}()
}
