package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tableside/menu-svc/internal/domain"
	"tableside/menu-svc/internal/mocks"
	"tableside/menu-svc/internal/service"
)

func TestRestaurantService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     *domain.Restaurant
		mockError error
		wantRepo  bool
		wantErr   bool
	}{
		{
			name:     "valid restaurant",
			input:    &domain.Restaurant{Name: "Trattoria", Slug: "trattoria"},
			wantRepo: true,
		},
		{
			name:    "missing name",
			input:   &domain.Restaurant{Slug: "trattoria"},
			wantErr: true,
		},
		{
			name:    "missing slug",
			input:   &domain.Restaurant{Name: "Trattoria"},
			wantErr: true,
		},
		{
			name:      "database error",
			input:     &domain.Restaurant{Name: "Trattoria", Slug: "trattoria"},
			mockError: assert.AnError,
			wantRepo:  true,
			wantErr:   true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.RestaurantRepository)
			svc := service.NewRestaurantService(mockRepo)

			if testCase.wantRepo {
				mockRepo.On("CreateRestaurant", testCase.input).Return(testCase.mockError).Once()
			}

			err := svc.Create(testCase.input)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestDishService_Create(t *testing.T) {
	tests := []struct {
		name     string
		input    *domain.Dish
		wantRepo bool
		wantErr  bool
	}{
		{
			name:     "valid dish",
			input:    &domain.Dish{RestaurantID: 1, Name: "Lasagna", Price: 12.5},
			wantRepo: true,
		},
		{
			name:    "missing name",
			input:   &domain.Dish{RestaurantID: 1, Price: 12.5},
			wantErr: true,
		},
		{
			name:    "negative price",
			input:   &domain.Dish{RestaurantID: 1, Name: "Lasagna", Price: -1},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.DishRepository)
			svc := service.NewDishService(mockRepo)

			if testCase.wantRepo {
				mockRepo.On("CreateDish", testCase.input).Return(nil).Once()
			}

			err := svc.Create(testCase.input)

			if testCase.wantErr {
				assert.Error(t, err)
				assert.ErrorIs(t, err, service.ErrInvalidPayload)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTableService_CreateDefaults(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	svc := service.NewTableService(mockRepo, nil)

	table := &domain.RestaurantTable{RestaurantID: 1, TableNumber: "5"}
	mockRepo.On("CreateTable", table).Return(nil).Once()

	err := svc.Create(table)

	assert.NoError(t, err)
	assert.Equal(t, 2, table.Capacity)
	assert.True(t, table.IsActive)
}

func TestTableService_CreateRejectsBlankNumber(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	svc := service.NewTableService(mockRepo, nil)

	err := svc.Create(&domain.RestaurantTable{RestaurantID: 1})

	assert.ErrorIs(t, err, service.ErrInvalidPayload)
	mockRepo.AssertNotCalled(t, "CreateTable", mock.Anything)
}

func TestTableService_QRCodeCached(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	mockQR := new(mocks.TableQRGenerator)
	svc := service.NewTableService(mockRepo, mockQR)

	mockRepo.On("GetTableQRCode", 1, 5).Return([]byte("png"), nil).Once()

	qr, err := svc.QRCode(1, 5)

	assert.NoError(t, err)
	assert.Equal(t, []byte("png"), qr)
	mockQR.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestTableService_QRCodeRegenerated(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	mockQR := new(mocks.TableQRGenerator)
	svc := service.NewTableService(mockRepo, mockQR)

	mockRepo.On("GetTableQRCode", 1, 5).Return(nil, nil).Once()
	mockRepo.On("GetTable", 1, 5).Return(&domain.RestaurantTable{ID: 5, RestaurantID: 1, TableNumber: "5"}, nil).Once()
	mockQR.On("Generate", 1, "5").Return([]byte("fresh"), nil).Once()
	mockRepo.On("SaveTableQRCode", 1, 5, []byte("fresh")).Return(nil).Once()

	qr, err := svc.QRCode(1, 5)

	assert.NoError(t, err)
	assert.Equal(t, []byte("fresh"), qr)
	mockRepo.AssertExpectations(t)
}

func TestDefaultTableQRGenerator(t *testing.T) {
	gen := service.DefaultTableQRGenerator{BaseURL: "http://localhost"}
	qr, err := gen.Generate(1, "5")

	assert.NoError(t, err)
	assert.NotEmpty(t, qr)
}
