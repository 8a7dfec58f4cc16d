package tests

import (
	"errors"
	"testing"

	"tableside/analytics-svc/internal/domain"
	"tableside/analytics-svc/internal/mocks"
	"tableside/analytics-svc/internal/service"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	tests := []struct {
		name           string
		inputEvent     domain.OrderEvent
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "order created",
			inputEvent: domain.OrderEvent{
				Type:         "order_created",
				OrderID:      7,
				RestaurantID: 10,
				Total:        28.75,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderCreated", 10, 28.75).Return(nil)
			},
		},
		{
			name: "order completed",
			inputEvent: domain.OrderEvent{
				Type:         "status_changed",
				OrderID:      7,
				RestaurantID: 10,
				Status:       "completed",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderOutcome", 10, "completed").Return(nil)
			},
		},
		{
			name: "order cancelled",
			inputEvent: domain.OrderEvent{
				Type:         "status_changed",
				OrderID:      7,
				RestaurantID: 10,
				Status:       "cancelled",
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderOutcome", 10, "cancelled").Return(nil)
			},
		},
		{
			name: "store error is swallowed",
			inputEvent: domain.OrderEvent{
				Type:         "order_created",
				OrderID:      7,
				RestaurantID: 10,
				Total:        28.75,
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("RecordOrderCreated", 10, 28.75).Return(errors.New("redis down"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}

			consumer.ProcessEvent(testCase.inputEvent)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_IgnoresNonTerminalStatus(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}

	consumer.ProcessEvent(domain.OrderEvent{
		Type:         "status_changed",
		OrderID:      7,
		RestaurantID: 10,
		Status:       "preparing",
	})

	mockStore.AssertNotCalled(t, "RecordOrderOutcome")
}

func TestConsumer_IgnoresUnknownType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{Store: mockStore}

	consumer.ProcessEvent(domain.OrderEvent{Type: "unknown_type", RestaurantID: 10})

	mockStore.AssertNotCalled(t, "RecordOrderCreated")
	mockStore.AssertNotCalled(t, "RecordOrderOutcome")
}
