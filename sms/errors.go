package sms

import "fmt"

// InvalidPhoneNumberError reports a contact string that could not be
// normalized to the fixed-length international format. The original input is
// kept so the skipped-recipient list can name it.
type InvalidPhoneNumberError struct {
	Raw string
}

func (e *InvalidPhoneNumberError) Error() string {
	return fmt.Sprintf("invalid phone number: %q", e.Raw)
}

// NoValidRecipientsError means every candidate recipient was skipped before
// the gateway was ever contacted.
type NoValidRecipientsError struct {
	Skipped []SkippedRecipient
}

func (e *NoValidRecipientsError) Error() string {
	return fmt.Sprintf("no valid recipients: %d skipped", len(e.Skipped))
}

// GatewaySendError wraps any transport or non-2xx failure from the external
// SMS gateway. Fatal for the whole dispatch; nothing is logged.
type GatewaySendError struct {
	Err error
}

func (e *GatewaySendError) Error() string {
	return fmt.Sprintf("sms gateway send failed: %v", e.Err)
}

func (e *GatewaySendError) Unwrap() error {
	return e.Err
}
