package create_appointment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelierhub/SBM-SchedulingService/internal/domain"
	"github.com/atelierhub/SBM-SchedulingService/internal/integrations/catalogservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/integrations/customerservice"
	"github.com/atelierhub/SBM-SchedulingService/internal/timegrid"
	"github.com/atelierhub/SBM-SchedulingService/pkg/ptr"
)

// mockAppointmentRepo implements AppointmentRepository for testing.
type mockAppointmentRepo struct {
	existing []*domain.Appointment
	nextID   int64
	created  *domain.Appointment
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	created := *appt
	if m.nextID == 0 {
		m.nextID = 1
	}
	created.ID = m.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockAppointmentRepo) GetByDay(ctx context.Context, filter domain.DayFilter) ([]*domain.Appointment, error) {
	return m.existing, nil
}

// mockCatalogClient implements CatalogServiceClient for testing.
type mockCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (m *mockCatalogClient) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.service, nil
}

// mockCustomerClient implements CustomerServiceClient for testing.
type mockCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (m *mockCustomerClient) GetCustomer(ctx context.Context, customerID int64) (*customerservice.Customer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.customer, nil
}

// mockTxManager runs the function directly, no transaction.
type mockTxManager struct {
	calls int
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var (
	testNow     = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	manicure    = &catalogservice.Service{ID: 5, Name: "Manicure", DurationMinutes: 40, Price: ptr.Ptr(35.0), Active: true}
	marCustomer = &customerservice.Customer{ID: 11, Name: "Mar", Phone: "+34 600 000 000"}
)

func newTestUseCase(repo *mockAppointmentRepo, catalog *mockCatalogClient, customer *mockCustomerClient, tx *mockTxManager) *UseCase {
	uc := NewUseCase(repo, catalog, customer, tx, timegrid.DefaultConfig(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecuteSuccess(t *testing.T) {
	repo := &mockAppointmentRepo{}
	tx := &mockTxManager{}
	uc := newTestUseCase(repo, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, tx)

	ana := "Ana"
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:   11,
		ServiceID:    5,
		StartsAt:     time.Date(2026, 3, 20, 9, 40, 0, 0, time.UTC),
		Professional: &ana,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, 40, resp.DurationMinutes)
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, 35.0, resp.ServicePrice)
	assert.Equal(t, "Mar", resp.CustomerName)
	assert.Equal(t, 1, tx.calls, "insert runs inside the transaction")
}

func TestExecuteConfirmFlag(t *testing.T) {
	repo := &mockAppointmentRepo{}
	uc := newTestUseCase(repo, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 11,
		ServiceID:  5,
		StartsAt:   time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
		Confirm:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestExecuteConflict(t *testing.T) {
	ana := "Ana"
	// Ana занята 09:00-09:40
	repo := &mockAppointmentRepo{existing: []*domain.Appointment{
		{
			ID:              1,
			StartsAt:        time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC),
			DurationMinutes: 40,
			Status:          domain.StatusConfirmed,
			Professional:    &ana,
		},
	}}
	uc := newTestUseCase(repo, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})

	t.Run("overlap is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID:   11,
			ServiceID:    5,
			StartsAt:     time.Date(2026, 3, 20, 9, 30, 0, 0, time.UTC),
			Professional: &ana,
		})
		assert.ErrorIs(t, err, ErrConflict)
		assert.Nil(t, repo.created, "nothing is persisted on conflict")
	})

	t.Run("touching interval is accepted", func(t *testing.T) {
		resp, err := uc.Execute(context.Background(), &Request{
			CustomerID:   11,
			ServiceID:    5,
			StartsAt:     time.Date(2026, 3, 20, 9, 40, 0, 0, time.UTC),
			Professional: &ana,
		})
		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
	})

	t.Run("other professional books freely", func(t *testing.T) {
		beto := "Beto"
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID:   11,
			ServiceID:    5,
			StartsAt:     time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC),
			Professional: &beto,
		})
		assert.NoError(t, err)
	})

	t.Run("unassigned professional is checked against everyone", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID: 11,
			ServiceID:  5,
			StartsAt:   time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestExecuteOffGridStart(t *testing.T) {
	// Сетка — подсказка для формы, а не правило приёма: запись на время
	// вне шага сетки внутри рабочих часов принимается
	repo := &mockAppointmentRepo{}
	uc := newTestUseCase(repo, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 11,
		ServiceID:  5,
		StartsAt:   time.Date(2026, 3, 20, 10, 15, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 20, 10, 15, 0, 0, time.UTC), resp.StartsAt)
}

func TestExecuteInputLimits(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})
	startsAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	t.Run("notes too long", func(t *testing.T) {
		notes := strings.Repeat("a", domain.MaxNotesLength+1)
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID: 11, ServiceID: 5, StartsAt: startsAt, Notes: &notes,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("professional too long", func(t *testing.T) {
		professional := strings.Repeat("a", domain.MaxProfessionalLength+1)
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID: 11, ServiceID: 5, StartsAt: startsAt, Professional: &professional,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("catalog duration out of range", func(t *testing.T) {
		broken := &catalogservice.Service{ID: 7, Name: "Broken", DurationMinutes: 0, Active: true}
		uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{service: broken}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})
		_, err := uc.Execute(context.Background(), &Request{
			CustomerID: 11, ServiceID: 7, StartsAt: startsAt,
		})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecuteTimeValidation(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})

	tests := []struct {
		name     string
		startsAt time.Time
		wantErr  error
	}{
		{"past day", time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), ErrPastTime},
		{"earlier today", time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), ErrPastTime},
		{"exactly now", time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC), ErrPastTime},
		{"before opening", time.Date(2026, 3, 20, 7, 30, 0, 0, time.UTC), ErrOutsideBusinessHours},
		{"aligned before opening", time.Date(2026, 3, 20, 7, 0, 0, 0, time.UTC), ErrOutsideBusinessHours},
		{"after last slot", time.Date(2026, 3, 20, 20, 30, 0, 0, time.UTC), ErrOutsideBusinessHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &Request{
				CustomerID: 11,
				ServiceID:  5,
				StartsAt:   tt.startsAt,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteLookupErrors(t *testing.T) {
	startsAt := time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

	t.Run("service not found", func(t *testing.T) {
		uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{err: catalogservice.ErrServiceNotFound},
			&mockCustomerClient{customer: marCustomer}, &mockTxManager{})

		_, err := uc.Execute(context.Background(), &Request{CustomerID: 11, ServiceID: 99, StartsAt: startsAt})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("inactive service", func(t *testing.T) {
		inactive := &catalogservice.Service{ID: 6, Name: "Old", DurationMinutes: 30, Active: false}
		uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{service: inactive},
			&mockCustomerClient{customer: marCustomer}, &mockTxManager{})

		_, err := uc.Execute(context.Background(), &Request{CustomerID: 11, ServiceID: 6, StartsAt: startsAt})
		assert.ErrorIs(t, err, ErrServiceInactive)
	})

	t.Run("customer not found", func(t *testing.T) {
		uc := newTestUseCase(&mockAppointmentRepo{}, &mockCatalogClient{service: manicure},
			&mockCustomerClient{err: customerservice.ErrCustomerNotFound}, &mockTxManager{})

		_, err := uc.Execute(context.Background(), &Request{CustomerID: 99, ServiceID: 5, StartsAt: startsAt})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestExecuteNormalizesProfessional(t *testing.T) {
	repo := &mockAppointmentRepo{}
	uc := newTestUseCase(repo, &mockCatalogClient{service: manicure}, &mockCustomerClient{customer: marCustomer}, &mockTxManager{})

	padded := "  Ana "
	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID:   11,
		ServiceID:    5,
		StartsAt:     time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC),
		Professional: &padded,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Professional)
	assert.Equal(t, "Ana", *resp.Professional)

	blank := "   "
	resp, err = uc.Execute(context.Background(), &Request{
		CustomerID:   11,
		ServiceID:    5,
		StartsAt:     time.Date(2026, 3, 20, 11, 0, 0, 0, time.UTC),
		Professional: &blank,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Professional, "blank professional becomes unassigned")
}
