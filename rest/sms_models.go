package rest

import (
	"encoding/json"
	"time"

	"netinv-api/sms"
)

type SendSMSRequest struct {
	Message    string  `json:"message" validate:"required"`
	Recipients []int64 `json:"recipients" validate:"required,min=1"`
}

type SendSMSByLocationRequest struct {
	LocationID int64  `json:"location_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

type SendSMSAllRequest struct {
	Message string `json:"message" validate:"required"`
}

type SendSMSResponse struct {
	Message        string                 `json:"message"`
	Status         sms.Status             `json:"status"`
	BatchID        string                 `json:"batch_id"`
	Sent           int                    `json:"sent"`
	Skipped        int                    `json:"skipped"`
	SkippedDetails []sms.SkippedRecipient `json:"skipped_details,omitempty"`
	GatewayResult  json.RawMessage        `json:"gateway_result,omitempty"`
}

type SMSLogDetail struct {
	ID       int64     `json:"id"`
	ClientID int64     `json:"client_id"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sent_at"`
	BatchID  string    `json:"batch_id,omitempty"`
}
