package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type LoginResponse struct {
	OK        bool   `json:"ok"`
	Token     string `json:"token,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type CreateOrderResponse struct {
	OK    bool  `json:"ok"`
	Order Order `json:"order"`
}

type UploadResponse struct {
	Path string `json:"path"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
