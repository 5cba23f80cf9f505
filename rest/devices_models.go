package rest

type DeviceRequest struct {
	DeviceName   string  `json:"device_name" validate:"required"`
	DeviceType   string  `json:"device_type" validate:"required,oneof=switch router ap gateway firewall other"`
	MACAddress   *string `json:"mac_address" validate:"omitempty,mac"`
	ManagementIP *string `json:"management_ip" validate:"omitempty,ipv4"`
	LocationID   *int64  `json:"location_id"`
	Description  *string `json:"description"`
}

type DeviceDetail struct {
	ID              int64   `json:"id"`
	DeviceName      string  `json:"device_name"`
	DeviceType      string  `json:"device_type"`
	MACAddress      *string `json:"mac_address,omitempty"`
	ManagementIP    *string `json:"management_ip,omitempty"`
	LocationID      *int64  `json:"location_id,omitempty"`
	LocationName    *string `json:"location_name,omitempty"`
	Description     *string `json:"description,omitempty"`
	AssignedIPCount int     `json:"assigned_ips_count"`
}
