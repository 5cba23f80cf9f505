package sms

import (
	"sort"
	"time"
)

// LogRow is one sms_logs row joined with client identity.
type LogRow struct {
	ClientID   int64
	ClientName string
	Contact    string
	Message    string
	SentAt     time.Time
	BatchID    string
}

type CampaignRecipient struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Campaign is one batch send reconstructed from log rows.
type Campaign struct {
	BatchID    string              `json:"batch_id,omitempty"`
	Message    string              `json:"message"`
	SentAt     time.Time           `json:"sent_at"`
	Recipients []CampaignRecipient `json:"recipients"`
}

// AggregateHistory groups log rows into campaigns, newest first. Rows
// written since batch ids were introduced group by batch id; older rows fall
// back to the legacy heuristic of identical message text and send timestamp
// truncated to the second.
func AggregateHistory(rows []LogRow) []Campaign {
	campaigns := []Campaign{}
	index := map[string]int{}

	for _, row := range rows {
		key := row.BatchID
		if key == "" {
			key = row.Message + "|" + row.SentAt.UTC().Truncate(time.Second).Format(time.RFC3339)
		}

		pos, ok := index[key]
		if !ok {
			pos = len(campaigns)
			index[key] = pos
			campaigns = append(campaigns, Campaign{
				BatchID: row.BatchID,
				Message: row.Message,
				SentAt:  row.SentAt,
			})
		}

		campaigns[pos].Recipients = append(campaigns[pos].Recipients, CampaignRecipient{
			Name:    row.ClientName,
			Contact: row.Contact,
		})
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].SentAt.After(campaigns[j].SentAt)
	})

	return campaigns
}
