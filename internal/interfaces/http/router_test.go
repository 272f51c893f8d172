package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/config"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/database"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/metrics"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/models"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/persistence/seeds"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/repository"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/handlers"
	sharedConfig "github.com/opolancoh/employee-permissions/internal/shared/config"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingPublisher struct {
	mu    sync.Mutex
	kinds []events.OperationKind
}

func (p *recordingPublisher) PublishOperation(_ context.Context, _ uuid.UUID, kind events.OperationKind) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.kinds = append(p.kinds, kind)
	return nil
}

type memoryIndex struct {
	mu   sync.Mutex
	docs map[string]permission.IndexedPermission
}

func (i *memoryIndex) EnsureIndex(context.Context) error { return nil }

func (i *memoryIndex) IndexPermission(_ context.Context, p *permission.Permission) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs[p.Key().DocumentID()] = permission.NewIndexedPermission(p)
	return nil
}

func (i *memoryIndex) UpdatePermission(ctx context.Context, p *permission.Permission) error {
	return i.IndexPermission(ctx, p)
}

func (i *memoryIndex) ListAll(context.Context) ([]permission.IndexedPermission, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	out := make([]permission.IndexedPermission, 0, len(i.docs))
	for _, d := range i.docs {
		out = append(out, d)
	}
	return out, nil
}

type testServer struct {
	engine    *gin.Engine
	publisher *recordingPublisher
	index     *memoryIndex
	metrics   *metrics.Metrics
}

func openSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := database.Open(&sharedConfig.DatabaseConfig{
		Driver:   sharedConfig.DriverSQLite,
		Database: "file::memory:",
	}, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(models.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	data, err := seeds.LoadReferenceData(nil)
	require.NoError(t, err)
	_, err = seeds.SeedReferenceData(context.Background(), repository.NewUnitOfWork(gdb), data, logger.NewNopLogger())
	require.NoError(t, err)
	return gdb
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		publisher: &recordingPublisher{},
		index:     &memoryIndex{docs: map[string]permission.IndexedPermission{}},
		metrics:   metrics.New(),
	}

	cfg := &config.Config{
		Metrics: sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	container := NewContainer(Infrastructure{
		DB:          openSeededDB(t),
		Publisher:   ts.publisher,
		SearchIndex: ts.index,
		Metrics:     ts.metrics,
		HealthChecks: map[string]handlers.HealthCheck{
			"database": func(context.Context) error { return nil },
		},
	}, cfg, logger.NewNopLogger())

	router := NewRouter(container)
	router.SetupRoutes()
	ts.engine = router.GetEngine()
	return ts
}

func (ts *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

const (
	aliceID    = "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	bobID      = "c9bf9e57-1685-4c89-bafb-ff5af830be8a"
	vacationID = "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed"
)

func grant(employeeID, description string) map[string]interface{} {
	return map[string]interface{}{
		"employeeId":       employeeID,
		"permissionTypeId": vacationID,
		"grantedDate":      "2024-06-03T00:00:00Z",
		"description":      description,
	}
}

func TestRouter_RequestThenList(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/permissions", grant(aliceID, "Summer"))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = ts.do(http.MethodGet, "/api/permissions", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []struct {
		EmployeeID   string `json:"employeeId"`
		EmployeeName string `json:"employeeName"`
		Permissions  []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"permissions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, aliceID, got[0].EmployeeID)
	assert.Equal(t, "Alice", got[0].EmployeeName)
	require.Len(t, got[0].Permissions, 1)
	assert.Equal(t, "Vacation", got[0].Permissions[0].Name)

	assert.Equal(t, []events.OperationKind{events.OperationRequest, events.OperationGet}, ts.publisher.kinds)
	assert.Len(t, ts.index.docs, 1)
}

func TestRouter_DuplicateRequestIs500(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusNoContent, ts.do(http.MethodPost, "/api/permissions", grant(aliceID, "")).Code)
	w := ts.do(http.MethodPost, "/api/permissions", grant(aliceID, ""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, []events.OperationKind{events.OperationRequest}, ts.publisher.kinds)
}

func TestRouter_ModifyUnknownGrantIs500(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPut, "/api/permissions", grant(bobID, "Later"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, ts.publisher.kinds)
	assert.Empty(t, ts.index.docs)
}

func TestRouter_ModifyExistingGrant(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusNoContent, ts.do(http.MethodPost, "/api/permissions", grant(bobID, "Early")).Code)
	w := ts.do(http.MethodPut, "/api/permissions", grant(bobID, "Later"))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []events.OperationKind{events.OperationRequest, events.OperationModify}, ts.publisher.kinds)
	assert.Equal(t, "Later", ts.index.docs[bobID+"_"+vacationID].Description)
}

func TestRouter_ReferenceData(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodGet, "/api/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var employees []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 3)

	w = ts.do(http.MethodGet, "/api/permission-types", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var types []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.Len(t, types, 2)
}

func TestRouter_InvalidBodyReportsJSONFieldName(t *testing.T) {
	ts := newTestServer(t)

	body := grant(aliceID, "")
	delete(body, "grantedDate")
	w := ts.do(http.MethodPost, "/api/permissions", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "grantedDate is required")
	assert.Empty(t, ts.publisher.kinds)
}

func TestRouter_UppercaseIDsMatchStoredGrant(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/permissions", grant(strings.ToUpper(aliceID), "Summer"))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	w = ts.do(http.MethodPut, "/api/permissions", grant(aliceID, "Winter"))
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}

func TestRouter_UnknownEmployeeIsRejected(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(http.MethodPost, "/api/permissions", grant("0b4e7a0e-5fe1-4c1f-9d3a-2f1c6e8b7a90", ""))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, ts.publisher.kinds)
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/health", nil).Code)
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/swagger/doc.json", nil).Code)

	ts.do(http.MethodGet, "/api/permissions", nil)
	w := ts.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "employee_permissions_http_requests_total")
	assert.Contains(t, w.Body.String(), "employee_permissions_operation_events_total")
}
