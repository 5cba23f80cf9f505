package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SkipReasonMissingContact marks recipients dropped before normalization
// because no contact number is on record.
const SkipReasonMissingContact = "contact_info_missing"

// Recipient is a client as seen by the dispatcher. Contact is empty when the
// client has no number on record.
type Recipient struct {
	ClientID int64
	Name     string
	Contact  string
}

type SkippedRecipient struct {
	ClientID int64  `json:"client_id"`
	Name     string `json:"name"`
	Reason   string `json:"reason"`
}

// Selector picks the recipient set for a dispatch: an explicit client list, a
// location, or every client. Exactly one of the three should be set.
type Selector struct {
	ClientIDs  []int64
	LocationID *int64
	All        bool
}

type Status string

const (
	// StatusSent means the gateway accepted the batch and every recipient
	// was logged.
	StatusSent Status = "sent"
	// StatusSentUnlogged means the gateway accepted the batch but the log
	// transaction failed. The send must never be reported as a failure at
	// that point; operators reconcile logs out-of-band.
	StatusSentUnlogged Status = "sent_unlogged"
)

type Result struct {
	Status         Status
	BatchID        string
	Sent           int
	Skipped        int
	SkippedDetails []SkippedRecipient
	GatewayResult  json.RawMessage
	// LoggingError carries the transaction failure when Status is
	// StatusSentUnlogged.
	LoggingError error
}

// Store is the persistence the dispatcher needs: recipient resolution and the
// transactional log write.
type Store interface {
	RecipientsByIDs(ids []int64) ([]Recipient, error)
	RecipientsByLocation(locationID int64) ([]Recipient, error)
	AllRecipients() ([]Recipient, error)
}

// LogStore writes one log row per sent recipient inside a single
// transaction.
type LogStore interface {
	InsertLogBatch(batchID string, clientIDs []int64, message string, sentAt time.Time) error
}

// Dispatcher runs the resolve → normalize → send → log pipeline. It holds no
// cross-request state; concurrent dispatches are independent.
type Dispatcher struct {
	Gateway     Gateway
	Store       Store
	Logs        LogStore
	CountryCode string
}

// Dispatch sends message to the recipients picked by sel.
//
// A bad contact skips that recipient only. If nobody remains, the gateway is
// never called and a *NoValidRecipientsError is returned. A gateway failure
// is fatal and nothing is logged. A logging failure after a successful send
// yields StatusSentUnlogged, not an error.
func (d *Dispatcher) Dispatch(ctx context.Context, sel Selector, message string) (*Result, error) {
	recipients, err := d.resolve(sel)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve recipients: %w", err)
	}

	var skipped []SkippedRecipient
	var numbers []string
	var sentIDs []int64

	for _, r := range recipients {
		if r.Contact == "" {
			skipped = append(skipped, SkippedRecipient{
				ClientID: r.ClientID,
				Name:     r.Name,
				Reason:   SkipReasonMissingContact,
			})
			continue
		}

		number, err := NormalizePhone(r.Contact, d.CountryCode)
		if err != nil {
			skipped = append(skipped, SkippedRecipient{
				ClientID: r.ClientID,
				Name:     r.Name,
				Reason:   err.Error(),
			})
			continue
		}

		numbers = append(numbers, number)
		sentIDs = append(sentIDs, r.ClientID)
	}

	if len(numbers) == 0 {
		return nil, &NoValidRecipientsError{Skipped: skipped}
	}

	ack, err := d.Gateway.Send(ctx, numbers, message)
	if err != nil {
		return nil, &GatewaySendError{Err: err}
	}

	result := &Result{
		Status:         StatusSent,
		BatchID:        uuid.New().String(),
		Sent:           len(sentIDs),
		Skipped:        len(skipped),
		SkippedDetails: skipped,
		GatewayResult:  ack,
	}

	sentAt := time.Now().UTC()
	if err := d.Logs.InsertLogBatch(result.BatchID, sentIDs, message, sentAt); err != nil {
		result.Status = StatusSentUnlogged
		result.LoggingError = err
	}

	return result, nil
}

func (d *Dispatcher) resolve(sel Selector) ([]Recipient, error) {
	switch {
	case len(sel.ClientIDs) > 0:
		return d.Store.RecipientsByIDs(sel.ClientIDs)
	case sel.LocationID != nil:
		return d.Store.RecipientsByLocation(*sel.LocationID)
	case sel.All:
		return d.Store.AllRecipients()
	}
	return nil, fmt.Errorf("empty recipient selector")
}
