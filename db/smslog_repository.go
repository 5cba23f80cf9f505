package db

import (
	"fmt"
	"strings"
	"time"

	"netinv-api/sms"
)

// SMSStore adapts the package-level queries to the dispatcher's Store and
// LogStore interfaces.
type SMSStore struct{}

func (SMSStore) RecipientsByIDs(ids []int64) ([]sms.Recipient, error) {
	return GetRecipientsByIDs(ids)
}

func (SMSStore) RecipientsByLocation(locationID int64) ([]sms.Recipient, error) {
	return GetRecipientsByLocation(locationID)
}

func (SMSStore) AllRecipients() ([]sms.Recipient, error) {
	return GetAllRecipients()
}

func (SMSStore) InsertLogBatch(batchID string, clientIDs []int64, message string, sentAt time.Time) error {
	return InsertSMSLogBatch(batchID, clientIDs, message, sentAt)
}

func GetRecipientsByIDs(ids []int64) ([]sms.Recipient, error) {
	if len(ids) == 0 {
		return []sms.Recipient{}, nil
	}

	var query string
	var args []interface{}

	if IsSQLite() {
		placeholders := make([]string, len(ids))
		args = make([]interface{}, 0, len(ids))
		for i, id := range ids {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args = append(args, id)
		}

		query = fmt.Sprintf(`
			SELECT id, name, contact_info
			FROM clients
			WHERE id IN (%s)
			ORDER BY id
		`, strings.Join(placeholders, ", "))
	} else {
		query = `
			SELECT id, name, contact_info
			FROM clients
			WHERE id = ANY($1)
			ORDER BY id
		`
		args = []interface{}{ids}
	}

	return queryRecipients(query, args...)
}

func GetRecipientsByLocation(locationID int64) ([]sms.Recipient, error) {
	query := `
		SELECT DISTINCT c.id, c.name, c.contact_info
		FROM clients c
		JOIN devices d ON c.device_id = d.id
		WHERE d.location_id = $1
		ORDER BY c.id
	`
	return queryRecipients(query, locationID)
}

func GetAllRecipients() ([]sms.Recipient, error) {
	return queryRecipients("SELECT id, name, contact_info FROM clients ORDER BY id")
}

func queryRecipients(query string, args ...interface{}) ([]sms.Recipient, error) {
	rows, err := DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipients: %w", err)
	}
	defer rows.Close()

	recipients := []sms.Recipient{}
	for rows.Next() {
		var r sms.Recipient
		var contact *string
		if err := rows.Scan(&r.ClientID, &r.Name, &contact); err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		if contact != nil {
			r.Contact = *contact
		}
		recipients = append(recipients, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recipients: %w", err)
	}

	return recipients, nil
}

// InsertSMSLogBatch writes one log row per client in a single transaction.
// All rows share the same timestamp and batch id so the batch can be
// reconstructed later.
func InsertSMSLogBatch(batchID string, clientIDs []int64, message string, sentAt time.Time) error {
	tx, err := DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, clientID := range clientIDs {
		if _, err = tx.Exec(
			"INSERT INTO sms_logs (client_id, message, sent_at, batch_id) VALUES ($1, $2, $3, $4)",
			clientID, message, sentAt, batchID,
		); err != nil {
			return fmt.Errorf("failed to insert sms log for client %d: %w", clientID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sms log batch: %w", err)
	}

	return nil
}

func GetSMSHistoryForClient(clientID int64) ([]SMSLog, error) {
	query := `
		SELECT id, client_id, message, sent_at, batch_id
		FROM sms_logs
		WHERE client_id = $1
		ORDER BY sent_at DESC
	`

	rows, err := DB.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sms history: %w", err)
	}
	defer rows.Close()

	logs := []SMSLog{}
	for rows.Next() {
		var l SMSLog
		if err := rows.Scan(&l.ID, &l.ClientID, &l.Message, &l.SentAt, &l.BatchID); err != nil {
			return nil, fmt.Errorf("failed to scan sms log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sms history: %w", err)
	}

	return logs, nil
}

// GetSMSHistory returns every log row joined with client identity, newest
// first, ready for campaign aggregation.
func GetSMSHistory() ([]sms.LogRow, error) {
	query := `
		SELECT s.client_id, c.name, c.contact_info, s.message, s.sent_at, s.batch_id
		FROM sms_logs s
		JOIN clients c ON s.client_id = c.id
		ORDER BY s.sent_at DESC, s.id DESC
	`

	rows, err := DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sms history: %w", err)
	}
	defer rows.Close()

	logRows := []sms.LogRow{}
	for rows.Next() {
		var r sms.LogRow
		var contact *string
		if err := rows.Scan(&r.ClientID, &r.ClientName, &contact, &r.Message, &r.SentAt, &r.BatchID); err != nil {
			return nil, fmt.Errorf("failed to scan sms history row: %w", err)
		}
		if contact != nil {
			r.Contact = *contact
		}
		logRows = append(logRows, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sms history: %w", err)
	}

	return logRows, nil
}
