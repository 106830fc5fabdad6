package create_appointment

import (
	"context"
	"time"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/integrations/customerservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetByDay внутри транзакции блокирует строки дня (FOR UPDATE)
	GetByDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error)
}

// CatalogServiceClient интерфейс клиента каталога услуг
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// CustomerServiceClient интерфейс клиента реестра клиентов
type CustomerServiceClient interface {
	GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
