package rest

type ClientRequest struct {
	Name        string  `json:"name" validate:"required"`
	ContactInfo *string `json:"contact_info"`
	DeviceID    *int64  `json:"device_id"`
	IPID        *int64  `json:"ip_id"`
	Description *string `json:"description"`
}

type ClientDetail struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactInfo  *string `json:"contact_info,omitempty"`
	DeviceID     *int64  `json:"device_id,omitempty"`
	DeviceName   *string `json:"device_name,omitempty"`
	DeviceType   *string `json:"device_type,omitempty"`
	MACAddress   *string `json:"mac_address,omitempty"`
	IPID         *int64  `json:"ip_id,omitempty"`
	IPAddress    *string `json:"ip_address,omitempty"`
	LocationID   *int64  `json:"location_id,omitempty"`
	LocationName *string `json:"location_name,omitempty"`
	Description  *string `json:"description,omitempty"`
}

type AreaClientDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	ContactInfo *string `json:"contact_info,omitempty"`
	DeviceName  *string `json:"device_name,omitempty"`
	DeviceType  *string `json:"device_type,omitempty"`
	IPAddress   *string `json:"ip_address,omitempty"`
}

type AreaDetail struct {
	LocationID   int64              `json:"location_id"`
	LocationName string             `json:"location_name"`
	Clients      []AreaClientDetail `json:"clients"`
}

type AvailableIPDetail struct {
	ID          int64   `json:"id"`
	IPAddress   string  `json:"ip_address"`
	DeviceID    *int64  `json:"device_id,omitempty"`
	DeviceName  *string `json:"device_name,omitempty"`
	DeviceType  *string `json:"device_type,omitempty"`
	Description *string `json:"description,omitempty"`
}
