package catalogservice

// Service модель услуги из каталога
type Service struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"`
	Price           *float64 `json:"price,omitempty"`
	Active          bool     `json:"active"`
}

// ErrorResponse модель ошибки от сервиса каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
