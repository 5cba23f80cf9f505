package rest

type LocationRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type LocationDetail struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type CreatedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}
