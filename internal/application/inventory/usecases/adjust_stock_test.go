package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldserve/internal/domain/inventory"
	"fieldserve/internal/shared/errors"
	"fieldserve/internal/shared/logger"
)

type mockItemRepository struct {
	SaveFunc             func(ctx context.Context, item *inventory.Item) error
	UpdateFunc           func(ctx context.Context, item *inventory.Item) error
	DeleteFunc           func(ctx context.Context, itemID uint) error
	GetByIDFunc          func(ctx context.Context, itemID uint) (*inventory.Item, error)
	GetByIDForUpdateFunc func(ctx context.Context, itemID uint) (*inventory.Item, error)
	GetBySKUFunc         func(ctx context.Context, sku string) (*inventory.Item, error)
	ListFunc             func(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error)
	ListBelowMinimumFunc func(ctx context.Context) ([]*inventory.Item, error)
}

func (m *mockItemRepository) Save(ctx context.Context, item *inventory.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *inventory.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, itemID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, itemID)
	}
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, itemID uint) (*inventory.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetByIDForUpdate(ctx context.Context, itemID uint) (*inventory.Item, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *mockItemRepository) GetBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	if m.GetBySKUFunc != nil {
		return m.GetBySKUFunc(ctx, sku)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter inventory.ItemFilter) ([]*inventory.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockItemRepository) ListBelowMinimum(ctx context.Context) ([]*inventory.Item, error) {
	if m.ListBelowMinimumFunc != nil {
		return m.ListBelowMinimumFunc(ctx)
	}
	return nil, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

func (n noopLogger) With(args ...any) logger.Interface  { return n }
func (n noopLogger) Named(name string) logger.Interface { return n }

func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newStockedItem(t *testing.T, stock int) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem("Heating element", "HE-230V", "fryer_parts", stock, 2, 20, "A-03", "Acme Parts", 45.50)
	require.NoError(t, err)
	require.NoError(t, item.SetID(5))
	return item
}

func TestAdjustStockUseCase_Execute_Restock(t *testing.T) {
	item := newStockedItem(t, 1)
	itemRepo := &mockItemRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*inventory.Item, error) { return item, nil },
	}

	uc := NewAdjustStockUseCase(itemRepo, passthroughTxManager{}, nil, noopLogger{})

	result, err := uc.Execute(context.Background(), AdjustStockCommand{ItemID: 5, Quantity: 10, AdjustedBy: 1})

	require.NoError(t, err)
	assert.Equal(t, 11, result.Stock)
	assert.False(t, result.BelowMinimum)
}

func TestAdjustStockUseCase_Execute_NegativeAdjustment(t *testing.T) {
	item := newStockedItem(t, 5)
	itemRepo := &mockItemRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*inventory.Item, error) { return item, nil },
	}

	uc := NewAdjustStockUseCase(itemRepo, passthroughTxManager{}, nil, noopLogger{})

	result, err := uc.Execute(context.Background(), AdjustStockCommand{ItemID: 5, Quantity: -3, AdjustedBy: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Stock)
	assert.True(t, result.BelowMinimum)
}

func TestAdjustStockUseCase_Execute_InsufficientStock(t *testing.T) {
	item := newStockedItem(t, 2)
	itemRepo := &mockItemRepository{
		GetByIDForUpdateFunc: func(ctx context.Context, id uint) (*inventory.Item, error) { return item, nil },
	}

	uc := NewAdjustStockUseCase(itemRepo, passthroughTxManager{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AdjustStockCommand{ItemID: 5, Quantity: -3, AdjustedBy: 1})

	assert.True(t, errors.IsConflictError(err))
	assert.Equal(t, 2, item.Stock())
}

func TestAdjustStockUseCase_Execute_ZeroQuantity(t *testing.T) {
	uc := NewAdjustStockUseCase(&mockItemRepository{}, passthroughTxManager{}, nil, noopLogger{})

	_, err := uc.Execute(context.Background(), AdjustStockCommand{ItemID: 5, Quantity: 0})

	assert.True(t, errors.IsValidationError(err))
}
