package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableside/api-gateway/internal/gateway"
	"tableside/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Checkout(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://order-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusCreated,
		Body:       io.NopCloser(strings.NewReader(`{"success":true,"order_id":7}`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "order-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/10/checkout", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "order_id")
	mockClient.AssertExpectations(t)
}

func TestGateway_RouteHandler_Cart(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://order-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"items":[]}`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "order-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_AvailableTables(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://order-svc",
		MenuSvcURL:  "http://menu-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[{"id":3,"table_number":"5"}]`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "order-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/tables/available", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "table_number")
}

func TestGateway_RouteHandler_Analytics(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL:     "http://order-svc",
		MenuSvcURL:      "http://menu-svc",
		AnalyticsSvcURL: "http://analytics-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"today":{"order_count":3}}`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "analytics-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/analytics/orders?period=today", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "order_count")
}

func TestGateway_RouteHandler_MenuCatalog(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		OrderSvcURL: "http://order-svc",
		MenuSvcURL:  "http://menu-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[{"id":1,"name":"Margherita"}]`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "menu-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/10/dishes", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Margherita")
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_RouteHandler_Cuisines(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL: "http://menu-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[{"id":1,"slug":"italian"}]`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Host == "menu-svc"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/cuisines", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "italian")
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ProxyRequest_ForwardsQuery(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.RawQuery == "category_id=3"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/1/dishes?category_id=3", nil)
	rr := httptest.NewRecorder()

	gw.ProxyRequest(rr, req, "http://menu-svc")

	assert.Equal(t, http.StatusOK, rr.Code)
}
