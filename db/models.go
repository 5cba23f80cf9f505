package db

import (
	"time"
)

type Location struct {
	ID          int64
	Name        string
	Description *string
}

type Device struct {
	ID           int64
	DeviceName   string
	DeviceType   string
	MACAddress   *string
	ManagementIP *string
	LocationID   *int64
	Description  *string
}

type IPAddress struct {
	ID          int64
	IPAddress   string
	DeviceID    *int64
	Description *string
}

type Client struct {
	ID          int64
	Name        string
	ContactInfo *string
	DeviceID    *int64
	IPID        *int64
	Description *string
}

type SMSLog struct {
	ID       int64
	ClientID int64
	Message  string
	SentAt   time.Time
	BatchID  string
}
