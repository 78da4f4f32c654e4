package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/srgjo27/trip_planner/internal/adapter/handler"
	"github.com/srgjo27/trip_planner/internal/adapter/repository/memory"
	"github.com/srgjo27/trip_planner/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newServer(t *testing.T) *httptest.Server {
	svc := services.NewSessionService(services.DefaultRegistry(), memory.NewSessionRepository(), services.SessionOptions{
		IdleTimeout: time.Hour,
	})

	router := chi.NewRouter()
	handler.NewSessionHandler(svc).Router(router)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}

	return resp.StatusCode, env
}

func startSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()

	code, env := do(t, http.MethodPost, srv.URL+"/sessions", "")
	require.Equal(t, http.StatusCreated, code)

	var session struct {
		SessionID string `json:"session_id"`
		TotalText string `json:"total_text"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.Equal(t, "Общая стоимость: 0.00 руб.", session.TotalText)

	return session.SessionID
}

func TestBookingFlow(t *testing.T) {
	srv := newServer(t)
	id := startSession(t, srv)

	code, env := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/bookings",
		`{"category_index":0,"destination":"Париж","from_date":"2024-01-01","to_date":"2024-01-03"}`)
	require.Equal(t, http.StatusCreated, code)

	var booked struct {
		Category     string  `json:"category"`
		Cost         float64 `json:"cost"`
		CostText     string  `json:"cost_text"`
		Confirmation string  `json:"confirmation"`
		TotalText    string  `json:"total_text"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &booked))
	assert.Equal(t, "hotel", booked.Category)
	assert.Equal(t, 90000.0, booked.Cost)
	assert.Equal(t, "90000.00", booked.CostText)
	assert.Equal(t, "Общая стоимость: 90000.00 руб.", booked.TotalText)
	assert.Contains(t, booked.Confirmation, "Отель забронирован")

	code, _ = do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/bookings",
		`{"category_index":4,"destination":"Париж","from_date":"2024-01-02","to_date":"2024-01-03"}`)
	require.Equal(t, http.StatusCreated, code)

	code, env = do(t, http.MethodGet, srv.URL+"/sessions/"+id, "")
	require.Equal(t, http.StatusOK, code)

	var summary struct {
		RunningTotal float64  `json:"running_total"`
		TotalText    string   `json:"total_text"`
		Table        []string `json:"table"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 94000.0, summary.RunningTotal)
	assert.Equal(t, []string{
		"Отель: Париж с 01/01/2024 по 03/01/2024",
		"Автомобиль: Париж с 02/01/2024 по 03/01/2024",
	}, summary.Table)

	code, _ = do(t, http.MethodDelete, srv.URL+"/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCreateBooking_NoSelection(t *testing.T) {
	srv := newServer(t)
	id := startSession(t, srv)

	code, env := do(t, http.MethodPost, srv.URL+"/sessions/"+id+"/bookings",
		`{"destination":"Париж","from_date":"2024-01-01","to_date":"2024-01-03"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Пожалуйста, выберите категорию.", env.Message)

	_, env = do(t, http.MethodGet, srv.URL+"/sessions/"+id, "")

	var summary struct {
		RunningTotal float64 `json:"running_total"`
		Bookings     []any   `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Zero(t, summary.RunningTotal)
	assert.Empty(t, summary.Bookings)
}

func TestCreateBooking_BadRequests(t *testing.T) {
	srv := newServer(t)
	id := startSession(t, srv)
	url := srv.URL + "/sessions/" + id + "/bookings"

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "malformed json", body: `{`, code: http.StatusBadRequest},
		{name: "missing dates", body: `{"category_index":0}`, code: http.StatusBadRequest},
		{name: "bad date", body: `{"category_index":0,"from_date":"soon","to_date":"2024-01-01"}`, code: http.StatusBadRequest},
		{name: "stale index", body: `{"category_index":7,"from_date":"2024-01-01","to_date":"2024-01-01"}`, code: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := do(t, http.MethodPost, url, tt.body)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestCreateBooking_UnknownSession(t *testing.T) {
	srv := newServer(t)

	code, _ := do(t, http.MethodPost, srv.URL+"/sessions/6f1c1f8e-8f4f-4f59-9d55-3a8a4bb2a0c1/bookings",
		`{"category_index":1,"from_date":"2024-01-01","to_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCategoriesAndPrices(t *testing.T) {
	srv := newServer(t)

	code, env := do(t, http.MethodGet, srv.URL+"/categories", "")
	require.Equal(t, http.StatusOK, code)

	var categories []services.CategoryView
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.Len(t, categories, 5)
	assert.Equal(t, "Авиабилет", categories[1].Label)

	code, env = do(t, http.MethodGet, srv.URL+"/categories/3", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), "Ресторан")

	code, _ = do(t, http.MethodGet, srv.URL+"/categories/5", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, http.MethodGet, srv.URL+"/categories/abc", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = do(t, http.MethodGet, srv.URL+"/prices", "")
	require.Equal(t, http.StatusOK, code)

	var prices struct {
		Lines []string `json:"lines"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &prices))
	assert.Equal(t, []string{
		"Отель: 30000 руб. в день",
		"Авиабилет: 9000 руб. в день",
		"Тур: 5000 руб. в день",
		"Ресторан: 1800 руб. в день",
		"Автомобиль: 2000 руб. в день",
	}, prices.Lines)
}
