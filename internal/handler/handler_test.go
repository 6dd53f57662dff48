package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"kanbanflow/internal/middleware"
	"kanbanflow/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Мок хранилища колонок, задач и досок
type MockStore struct {
	mock.Mock
}

func (m *MockStore) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).([]model.Column), args.Error(1)
}

func (m *MockStore) SetOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error) {
	args := m.Called(ctx, id, order)
	column := args.Get(0)
	if column == nil {
		return nil, args.Error(1)
	}
	return column.(*model.Column), args.Error(1)
}

func (m *MockStore) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).([]model.Issue), args.Error(1)
}

func (m *MockStore) SetPlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error) {
	args := m.Called(ctx, id, p)
	issue := args.Get(0)
	if issue == nil {
		return nil, args.Error(1)
	}
	return issue.(*model.Issue), args.Error(1)
}

// session.Store on top of the same mock
func (m *MockStore) SetColumnOrder(ctx context.Context, id uuid.UUID, order int) (*model.Column, error) {
	return m.SetOrder(ctx, id, order)
}

func (m *MockStore) SetIssuePlacement(ctx context.Context, id uuid.UUID, p model.Placement) (*model.Issue, error) {
	return m.SetPlacement(ctx, id, p)
}

func (m *MockStore) ListColumns(ctx context.Context, boardID uuid.UUID) ([]model.Column, error) {
	return m.ListByBoard(ctx, boardID)
}

func (m *MockStore) ListIssues(ctx context.Context, projectID uuid.UUID) ([]model.Issue, error) {
	return m.ListByProject(ctx, projectID)
}

func (m *MockStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func newRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			c.Set(middleware.UserIDKey, uuid.New())
			c.Next()
		})
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}
