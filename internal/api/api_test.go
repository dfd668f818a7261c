package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/procsched/internal/report"
)

const twoProcesses = `{
	"processes": [
		{"process_id": "P1", "burst": 2, "arrival_time": 0},
		{"process_id": "P2", "burst": 6, "arrival_time": 1}
	]
}`

func testHandler() *Handler {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewHandler(2, logrus.NewEntry(logger))
}

func do(t *testing.T, method, path, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := NewApp(testHandler()).Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestSchedule_RoundRobinDefaultQuantum(t *testing.T) {
	status, body := do(t, http.MethodPost, "/api/v1/schedule/rr", twoProcesses)
	require.Equal(t, http.StatusOK, status, string(body))

	var resp report.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "rr", resp.Algorithm)
	assert.Equal(t, int64(2), resp.Quantum)
	assert.Len(t, resp.Timeline, 4)
	assert.Equal(t, int64(8), resp.Details[1].FinishTime)
	assert.Equal(t, int64(1), resp.Details[1].WaitingTime)
}

func TestSchedule_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		status int
		want   string
	}{
		{"unknown algorithm", "/api/v1/schedule/lottery", twoProcesses, http.StatusNotFound, "unknown algorithm"},
		{"malformed body", "/api/v1/schedule/fcfs", `{"processes": [`, http.StatusBadRequest, "invalid request format"},
		{"fractional burst", "/api/v1/schedule/fcfs", `{"processes": [{"process_id": "P1", "burst": 2.5}]}`, http.StatusBadRequest, "invalid request format"},
		{"empty set", "/api/v1/schedule/sjf", `{"processes": []}`, http.StatusBadRequest, "process set is empty"},
		{"arrival at int64 limit", "/api/v1/schedule/srtf", `{"processes": [{"process_id": "P1", "burst": 2, "arrival_time": 9223372036854775807}]}`, http.StatusBadRequest, "arrival must not exceed"},
		{"burst past horizon", "/api/v1/schedule/srtf", `{"processes": [{"process_id": "P1", "burst": 10000000000000}]}`, http.StatusBadRequest, "burst must not exceed"},
		{"negative quantum", "/api/v1/schedule/rr", `{"quantum": -1, "processes": [{"process_id": "P1", "burst": 1}]}`, http.StatusBadRequest, "quantum must be positive"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.status, status)
			assert.Contains(t, string(body), tc.want)
		})
	}
}

func TestScheduleAll(t *testing.T) {
	body := `{"algorithms": ["srtf", "fcfs"], "quantum": 3, "processes": [
		{"process_id": "P1", "burst": 2, "arrival_time": 0},
		{"process_id": "P2", "burst": 6, "arrival_time": 1}
	]}`
	status, data := do(t, http.MethodPost, "/api/v1/schedule", body)
	require.Equal(t, http.StatusOK, status, string(data))

	var resp []report.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "srtf", resp[0].Algorithm)
	assert.Equal(t, "fcfs", resp[1].Algorithm)
}

func TestScheduleAll_Defaults(t *testing.T) {
	status, data := do(t, http.MethodPost, "/api/v1/schedule", twoProcesses)
	require.Equal(t, http.StatusOK, status, string(data))

	var resp []report.ScheduleResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Len(t, resp, 5)
}

func TestNewApp_RecoversFromPanics(t *testing.T) {
	app := NewApp(testHandler())
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	status, _ := do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
}

func TestHealth(t *testing.T) {
	status, body := do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", string(body))
}
