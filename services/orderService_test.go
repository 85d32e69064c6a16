package services_test

import (
	"context"
	"testing"

	"github.com/shreeambika/easyshop-api/mocks"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validInput() services.CreateOrderInput {
	return services.CreateOrderInput{
		UserID:          1,
		Items:           []models.OrderItem{{ProductID: "ply-1", Price: 1850, Quantity: 2}},
		TotalAmount:     3700,
		ShippingAddress: "123 Main St",
		City:            "Deesa",
		PaymentMethod:   "UPI",
		TransactionID:   "ABC123456789",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*services.CreateOrderInput)
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockSettingRepository)
		expectedError error
		expectNoWrite bool
		expectSaved   func(*testing.T, *models.Order)
	}{
		{
			name: "missing city",
			mutate: func(input *services.CreateOrderInput) {
				input.City = ""
			},
			expectedError: services.ErrMissingFields,
			expectNoWrite: true,
		},
		{
			name: "missing items",
			mutate: func(input *services.CreateOrderInput) {
				input.Items = nil
			},
			expectedError: services.ErrMissingFields,
			expectNoWrite: true,
		},
		{
			name: "non-positive total",
			mutate: func(input *services.CreateOrderInput) {
				input.TotalAmount = 0
			},
			expectedError: services.ErrMissingFields,
			expectNoWrite: true,
		},
		{
			name: "upi transaction id too short",
			mutate: func(input *services.CreateOrderInput) {
				input.TransactionID = "SHORT123"
			},
			expectedError: services.ErrInvalidTransactionID,
			expectNoWrite: true,
		},
		{
			name: "upi transaction id missing",
			mutate: func(input *services.CreateOrderInput) {
				input.TransactionID = ""
			},
			expectedError: services.ErrInvalidTransactionID,
			expectNoWrite: true,
		},
		{
			name: "duplicate transaction id rejected on pre-check",
			setupMocks: func(orders *mocks.MockOrderRepository, settings *mocks.MockSettingRepository) {
				orders.On("TransactionIDExists", "ABC123456789").Return(true, nil)
			},
			expectedError: repository.ErrDuplicateTransactionID,
			expectNoWrite: true,
		},
		{
			name: "bank declines fail-prefixed transaction id",
			mutate: func(input *services.CreateOrderInput) {
				input.TransactionID = "failABC123456789"
			},
			setupMocks: func(orders *mocks.MockOrderRepository, settings *mocks.MockSettingRepository) {
				orders.On("TransactionIDExists", "failABC123456789").Return(false, nil)
				settings.On("Get", models.SettingUPIID).Return("", nil)
			},
			expectedError: services.ErrBankRejected,
			expectNoWrite: true,
		},
		{
			name: "cash order recorded without verification",
			mutate: func(input *services.CreateOrderInput) {
				input.PaymentMethod = "Cash"
				input.TransactionID = ""
			},
			setupMocks: func(orders *mocks.MockOrderRepository, settings *mocks.MockSettingRepository) {
				orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*models.Order).ID = 7
				})
			},
			expectSaved: func(t *testing.T, order *models.Order) {
				assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
				assert.Equal(t, models.OrderStatusPending, order.Status)
				assert.Nil(t, order.TransactionID)
			},
		},
		{
			name: "upi order succeeds",
			setupMocks: func(orders *mocks.MockOrderRepository, settings *mocks.MockSettingRepository) {
				orders.On("TransactionIDExists", "ABC123456789").Return(false, nil)
				settings.On("Get", models.SettingUPIID).Return("store@upi", nil)
				orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(0).(*models.Order).ID = 42
				})
			},
			expectSaved: func(t *testing.T, order *models.Order) {
				assert.Equal(t, models.PaymentStatusSuccess, order.PaymentStatus)
				assert.Equal(t, models.OrderStatusPending, order.Status)
				if assert.NotNil(t, order.TransactionID) {
					assert.Equal(t, "ABC123456789", *order.TransactionID)
				}
			},
		},
		{
			name: "duplicate surfaced by the unique constraint",
			setupMocks: func(orders *mocks.MockOrderRepository, settings *mocks.MockSettingRepository) {
				orders.On("TransactionIDExists", "ABC123456789").Return(false, nil)
				settings.On("Get", models.SettingUPIID).Return("", nil)
				orders.On("Create", mock.AnythingOfType("*models.Order")).Return(repository.ErrDuplicateTransactionID)
			},
			expectedError: repository.ErrDuplicateTransactionID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := new(mocks.MockOrderRepository)
			settings := new(mocks.MockSettingRepository)
			if tt.setupMocks != nil {
				tt.setupMocks(orders, settings)
			}

			input := validInput()
			if tt.mutate != nil {
				tt.mutate(&input)
			}

			svc := services.NewOrderService(orders, settings, services.NewUPIVerifier())
			orderID, err := svc.CreateOrder(context.Background(), input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Zero(t, orderID)
				if tt.expectNoWrite {
					orders.AssertNotCalled(t, "Create", mock.Anything)
				}
				return
			}

			assert.NoError(t, err)
			assert.NotZero(t, orderID)
			if tt.expectSaved != nil {
				saved := orders.Calls[len(orders.Calls)-1].Arguments.Get(0).(*models.Order)
				tt.expectSaved(t, saved)
			}
		})
	}
}

// A transaction ID accepted once may never be accepted again.
func TestOrderService_CreateOrder_ReplayRejected(t *testing.T) {
	orders := new(mocks.MockOrderRepository)
	settings := new(mocks.MockSettingRepository)
	settings.On("Get", models.SettingUPIID).Return("", nil)

	orders.On("TransactionIDExists", "ABC123456789").Return(false, nil).Once()
	orders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once().Run(func(args mock.Arguments) {
		args.Get(0).(*models.Order).ID = 1
	})

	svc := services.NewOrderService(orders, settings, services.NewUPIVerifier())

	orderID, err := svc.CreateOrder(context.Background(), validInput())
	assert.NoError(t, err)
	assert.Equal(t, uint(1), orderID)

	orders.On("TransactionIDExists", "ABC123456789").Return(true, nil).Once()

	_, err = svc.CreateOrder(context.Background(), validInput())
	assert.ErrorIs(t, err, repository.ErrDuplicateTransactionID)
}
