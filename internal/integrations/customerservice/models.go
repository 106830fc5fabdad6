package customerservice

// Customer модель клиента из реестра клиентов
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от реестра клиентов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
