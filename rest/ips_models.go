package rest

type IPRequest struct {
	IPAddress   string  `json:"ip_address" validate:"required,ipv4"`
	DeviceID    *int64  `json:"device_id"`
	Description *string `json:"description"`
}

type BulkIPRequest struct {
	IPs []IPRequest `json:"ips" validate:"required,min=1,dive"`
}

type IPDetail struct {
	ID          int64   `json:"id"`
	IPAddress   string  `json:"ip_address"`
	DeviceID    *int64  `json:"device_id,omitempty"`
	DeviceName  *string `json:"device_name,omitempty"`
	DeviceType  *string `json:"device_type,omitempty"`
	ClientID    *int64  `json:"client_id,omitempty"`
	ClientName  *string `json:"client_name,omitempty"`
	Description *string `json:"description,omitempty"`
}
