package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/application/ticket/usecases"
	"fieldserve/internal/shared/constants"
	"fieldserve/internal/shared/logger"
)

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                       {}
func (noopLogger) Info(msg string, args ...any)                        {}
func (noopLogger) Warn(msg string, args ...any)                        {}
func (noopLogger) Error(msg string, args ...any)                       {}
func (n noopLogger) With(args ...any) logger.Interface                 { return n }
func (n noopLogger) Named(name string) logger.Interface                { return n }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{})     {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})      {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})      {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{})     {}

type mockCreateTicketExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

func (m *mockCreateTicketExecutor) Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockResolveTicketExecutor struct {
	executeFn func(ctx context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error)
}

func (m *mockResolveTicketExecutor) Execute(ctx context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, cmd)
	}
	return nil, nil
}

type mockListTicketsExecutor struct {
	executeFn func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	if m.executeFn != nil {
		return m.executeFn(ctx, query)
	}
	return nil, nil
}

func newTestContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func authenticate(c *gin.Context, userID uint, role string) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUserRole, role)
}

func TestTicketHandler_Create(t *testing.T) {
	t.Run("creates ticket with authenticated user as creator", func(t *testing.T) {
		var captured usecases.CreateTicketCommand
		create := &mockCreateTicketExecutor{
			executeFn: func(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error) {
				captured = cmd
				return &usecases.CreateTicketResult{
					TicketID:  7,
					Number:    "FS-20260830-0001",
					Status:    "new",
					CreatedAt: time.Now(),
				}, nil
			},
		}
		handler := &TicketHandler{createUseCase: create, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodPost, "/tickets", gin.H{
			"title":         "Fryer will not heat",
			"description":   "No heat after power cycle",
			"priority":      "high",
			"device_id":     3,
			"restaurant_id": 1,
		})
		authenticate(c, 42, "restaurant_staff")

		handler.Create(c)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, uint(42), captured.CreatorID)
		assert.Equal(t, "high", captured.Priority)
		assert.Equal(t, uint(3), captured.DeviceID)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		handler := &TicketHandler{createUseCase: &mockCreateTicketExecutor{}, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodPost, "/tickets", gin.H{"title": "no description"})
		authenticate(c, 42, "restaurant_staff")

		handler.Create(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects unauthenticated request", func(t *testing.T) {
		handler := &TicketHandler{createUseCase: &mockCreateTicketExecutor{}, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodPost, "/tickets", gin.H{})

		handler.Create(c)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestTicketHandler_Resolve(t *testing.T) {
	t.Run("passes parts through to the use case", func(t *testing.T) {
		var captured usecases.ResolveTicketCommand
		resolve := &mockResolveTicketExecutor{
			executeFn: func(ctx context.Context, cmd usecases.ResolveTicketCommand) (*usecases.ResolveTicketResult, error) {
				captured = cmd
				return &usecases.ResolveTicketResult{TicketID: cmd.TicketID, Status: "resolved"}, nil
			},
		}
		handler := &TicketHandler{resolveUseCase: resolve, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodPost, "/tickets/9/resolve", gin.H{
			"resolution":     "replaced heating element",
			"work_performed": "swap element, test cycle",
			"minutes_spent":  45,
			"parts": []gin.H{
				{"item_id": 2, "quantity": 1},
			},
		})
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		authenticate(c, 10, "technician")

		handler.Resolve(c)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint(9), captured.TicketID)
		require.Len(t, captured.Parts, 1)
		assert.Equal(t, uint(2), captured.Parts[0].ItemID)
		assert.Equal(t, 1, captured.Parts[0].Quantity)
	})

	t.Run("rejects zero minutes spent", func(t *testing.T) {
		handler := &TicketHandler{resolveUseCase: &mockResolveTicketExecutor{}, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodPost, "/tickets/9/resolve", gin.H{
			"resolution":     "done",
			"work_performed": "something",
			"minutes_spent":  0,
		})
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		authenticate(c, 10, "technician")

		handler.Resolve(c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTicketHandler_List(t *testing.T) {
	t.Run("parses filters from query string", func(t *testing.T) {
		var captured usecases.ListTicketsQuery
		list := &mockListTicketsExecutor{
			executeFn: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
				captured = query
				return &usecases.ListTicketsResult{Page: query.Page, PageSize: query.PageSize}, nil
			},
		}
		handler := &TicketHandler{listUseCase: list, logger: noopLogger{}}

		c, rec := newTestContext(http.MethodGet, "/tickets?status=new&restaurant_id=4&page=2&page_size=10", nil)
		authenticate(c, 5, "manager")

		handler.List(c)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "new", captured.Status)
		require.NotNil(t, captured.RestaurantID)
		assert.Equal(t, uint(4), *captured.RestaurantID)
		assert.Nil(t, captured.DeviceID)
		assert.Equal(t, 2, captured.Page)
		assert.Equal(t, 10, captured.PageSize)
	})
}
