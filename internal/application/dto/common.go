package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse respuesta de actualizaciones, eliminaciones y transiciones del flujo.
type MessageResponse struct {
	Message string `json:"message"`
}

// BannerResponse respuesta de GET /api.
type BannerResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse respuesta de GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
