package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "tableside/menu-svc/internal/api/http"
	"tableside/menu-svc/internal/domain"
	"tableside/menu-svc/internal/mocks"
	"tableside/menu-svc/internal/service"
)

func serve(handler *httpapi.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	r.ServeHTTP(w, req)
	return w
}

func TestCreateRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*mocks.RestaurantRepository)
		wantCode  int
	}{
		{
			name: "valid request",
			body: `{"name":"Trattoria","slug":"trattoria","cuisine_id":1}`,
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("CreateRestaurant", mock.AnythingOfType("*domain.Restaurant")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing slug",
			body:      `{"name":"Trattoria"}`,
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"name":"Trattoria","slug":"trattoria"}`,
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("CreateRestaurant", mock.AnythingOfType("*domain.Restaurant")).Return(errors.New("db error")).Once()
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.RestaurantRepository)
			handler := httpapi.NewHandler(service.NewRestaurantService(mockRepo), nil, nil, nil)

			testCase.setupMock(mockRepo)

			req := httptest.NewRequest("POST", "/api/restaurants", bytes.NewBufferString(testCase.body))
			req.Header.Set("Content-Type", "application/json")
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetRestaurantBySlugHandler(t *testing.T) {
	mockRepo := new(mocks.RestaurantRepository)
	handler := httpapi.NewHandler(service.NewRestaurantService(mockRepo), nil, nil, nil)

	mockRepo.On("GetRestaurantBySlug", "trattoria").
		Return(&domain.Restaurant{ID: 1, Name: "Trattoria", Slug: "trattoria"}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/by-slug/trattoria", nil)
	w := serve(handler, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rest domain.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rest))
	assert.Equal(t, "Trattoria", rest.Name)
}

func TestReplaceFeaturesHandler(t *testing.T) {
	mockRepo := new(mocks.RestaurantRepository)
	handler := httpapi.NewHandler(service.NewRestaurantService(mockRepo), nil, nil, nil)

	mockRepo.On("ReplaceFeatures", 1, mock.AnythingOfType("[]domain.Feature")).Return(nil).Once()

	body := `[{"name":"wifi","enabled":true},{"name":"delivery","enabled":false}]`
	req := httptest.NewRequest("PUT", "/api/restaurants/1/features", bytes.NewBufferString(body))
	w := serve(handler, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestListDishesHandlerFiltersByCategory(t *testing.T) {
	mockRepo := new(mocks.DishRepository)
	handler := httpapi.NewHandler(nil, nil, service.NewDishService(mockRepo), nil)

	mockRepo.On("ListDishes", 1, 3).
		Return([]domain.Dish{{ID: 9, RestaurantID: 1, CategoryID: 3, Name: "Lasagna"}}, nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/1/dishes?category_id=3", nil)
	w := serve(handler, req)

	require.Equal(t, http.StatusOK, w.Code)

	var dishes []domain.Dish
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dishes))
	require.Len(t, dishes, 1)
	assert.Equal(t, "Lasagna", dishes[0].Name)
}

func TestSetTableActiveHandler(t *testing.T) {
	tests := []struct {
		name     string
		rows     int64
		wantCode int
	}{
		{name: "deactivated", rows: 1, wantCode: http.StatusOK},
		{name: "not found", rows: 0, wantCode: http.StatusNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRepo := new(mocks.TableRepository)
			handler := httpapi.NewHandler(nil, nil, nil, service.NewTableService(mockRepo, nil))

			mockRepo.On("SetTableActive", 1, 5, false).Return(testCase.rows, nil).Once()

			req := httptest.NewRequest("PATCH", "/api/restaurants/1/tables/5/active",
				bytes.NewBufferString(`{"is_active":false}`))
			w := serve(handler, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetTableQRCodeHandler(t *testing.T) {
	mockRepo := new(mocks.TableRepository)
	handler := httpapi.NewHandler(nil, nil, nil, service.NewTableService(mockRepo, nil))

	mockRepo.On("GetTableQRCode", 1, 5).Return([]byte("png-bytes"), nil).Once()

	req := httptest.NewRequest("GET", "/api/restaurants/1/tables/5/qrcode", nil)
	w := serve(handler, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("png-bytes"), w.Body.Bytes())
}
