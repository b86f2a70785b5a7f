package consumable_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sarpras-api/internal/application/consumable"
	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/domain/repository"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeConsumableRepo struct {
	items map[string]*entity.ConsumableProduct
}

func (f *fakeConsumableRepo) Create(c *entity.ConsumableProduct) error {
	f.items[c.ID] = c
	return nil
}

func (f *fakeConsumableRepo) GetByID(id string) (*entity.ConsumableProduct, error) {
	return f.items[id], nil
}

func (f *fakeConsumableRepo) Update(c *entity.ConsumableProduct) error { return nil }

func (f *fakeConsumableRepo) List(limit, offset int) ([]*entity.ConsumableProduct, error) {
	return nil, nil
}

func (f *fakeConsumableRepo) Delete(id string) error { return nil }

type fakeStockRepo struct {
	stocks map[string]*entity.ConsumableStock // key: consumableID+"/"+locationID
	below  []repository.BelowReorderItem
}

func stockKey(consumableID, locationID string) string { return consumableID + "/" + locationID }

func (f *fakeStockRepo) Get(consumableID, locationID string) (*entity.ConsumableStock, error) {
	if s, ok := f.stocks[stockKey(consumableID, locationID)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.ConsumableStock{ConsumableID: consumableID, LocationID: locationID, Quantity: decimal.Zero}, nil
}

func (f *fakeStockRepo) GetForUpdate(consumableID, locationID string) (*entity.ConsumableStock, error) {
	return f.Get(consumableID, locationID)
}

func (f *fakeStockRepo) Upsert(stock *entity.ConsumableStock) error {
	cp := *stock
	f.stocks[stockKey(stock.ConsumableID, stock.LocationID)] = &cp
	return nil
}

func (f *fakeStockRepo) ListBelowReorder(locationID string) ([]repository.BelowReorderItem, error) {
	return f.below, nil
}

type fakeLogRepo struct {
	logs []*entity.ConsumableLog
}

func (f *fakeLogRepo) Create(l *entity.ConsumableLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeLogRepo) ListByConsumable(consumableID string, limit, offset int) ([]*entity.ConsumableLog, error) {
	var out []*entity.ConsumableLog
	for _, l := range f.logs {
		if l.ConsumableID == consumableID {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
}

func (f *fakeLocationRepo) Create(l *entity.Location) error { return nil }

func (f *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return f.locations[id], nil
}

func (f *fakeLocationRepo) GetByTriple(name, building, floor string) (*entity.Location, error) {
	return nil, nil
}

func (f *fakeLocationRepo) Update(l *entity.Location) error { return nil }

func (f *fakeLocationRepo) List(limit, offset int) ([]*entity.Location, error) { return nil, nil }

func (f *fakeLocationRepo) Delete(id string) error { return nil }

// fakeTxRunner entrega los fakes al callback; si falla, descarta los cambios
// de saldo hechos durante la transacción.
type fakeTxRunner struct {
	stockRepo *fakeStockRepo
	logRepo   *fakeLogRepo
}

var _ consumable.TxRunner = (*fakeTxRunner)(nil)

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.ConsumableStockRepository,
	logRepo repository.ConsumableLogRepository,
) error) error {
	snapshot := make(map[string]*entity.ConsumableStock, len(f.stockRepo.stocks))
	for k, v := range f.stockRepo.stocks {
		cp := *v
		snapshot[k] = &cp
	}
	logCount := len(f.logRepo.logs)
	if err := fn(f.stockRepo, f.logRepo); err != nil {
		f.stockRepo.stocks = snapshot
		f.logRepo.logs = f.logRepo.logs[:logCount]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *consumable.StockUseCase
	stockRepo *fakeStockRepo
	logRepo   *fakeLogRepo
}

func newFixture(initialStock decimal.Decimal) *fixture {
	repo := &fakeConsumableRepo{items: map[string]*entity.ConsumableProduct{
		"cons-kapur": {ID: "cons-kapur", Code: "KPR", Name: "Kapur Tulis", Unit: entity.UnitBox, ReorderPoint: decimal.NewFromInt(10)},
	}}
	stockRepo := &fakeStockRepo{stocks: map[string]*entity.ConsumableStock{}}
	if !initialStock.IsZero() {
		stockRepo.stocks[stockKey("cons-kapur", "loc-gudang")] = &entity.ConsumableStock{
			ConsumableID: "cons-kapur", LocationID: "loc-gudang", Quantity: initialStock,
		}
	}
	logRepo := &fakeLogRepo{}
	locRepo := &fakeLocationRepo{locations: map[string]*entity.Location{
		"loc-gudang": {ID: "loc-gudang", Name: "Gudang ATK", Building: "B", Floor: "1"},
	}}
	tx := &fakeTxRunner{stockRepo: stockRepo, logRepo: logRepo}
	return &fixture{
		uc:        consumable.NewStockUseCase(tx, repo, stockRepo, logRepo, locRepo),
		stockRepo: stockRepo,
		logRepo:   logRepo,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Restock suma al saldo y deja exactamente UNA entrada penambahan en el ledger.
func TestRestock_ActualizaSaldoYRegistraUnLog(t *testing.T) {
	f := newFixture(decimal.Zero)

	out, err := f.uc.Restock(context.Background(), testUserID, "cons-kapur", dto.StockTransactionRequest{
		LocationID: "loc-gudang",
		Quantity:   decimal.NewFromInt(25),
		Note:       "pembelian awal semester",
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(25)), "saldo esperado 25, fue %s", out.Quantity)

	require.Len(t, f.logRepo.logs, 1, "cada mutación de saldo produce exactamente un log")
	log := f.logRepo.logs[0]
	assert.Equal(t, entity.LogTypeRestock, log.Type)
	assert.True(t, log.Quantity.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, testUserID, log.CreatedBy)
	assert.Equal(t, "pembelian awal semester", log.Note)
}

func TestUse_DescuentaSaldo(t *testing.T) {
	f := newFixture(decimal.NewFromInt(20))

	out, err := f.uc.Use(context.Background(), testUserID, "cons-kapur", dto.StockTransactionRequest{
		LocationID: "loc-gudang",
		Quantity:   decimal.NewFromInt(7),
	})
	require.NoError(t, err)
	assert.True(t, out.Quantity.Equal(decimal.NewFromInt(13)))

	require.Len(t, f.logRepo.logs, 1)
	assert.Equal(t, entity.LogTypeUsage, f.logRepo.logs[0].Type)
}

// El consumo que excede el saldo falla sin mutar saldo ni ledger.
func TestUse_SaldoInsuficiente(t *testing.T) {
	f := newFixture(decimal.NewFromInt(5))

	_, err := f.uc.Use(context.Background(), testUserID, "cons-kapur", dto.StockTransactionRequest{
		LocationID: "loc-gudang",
		Quantity:   decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	stock, _ := f.stockRepo.Get("cons-kapur", "loc-gudang")
	assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(5)), "el saldo no debe cambiar")
	assert.Empty(t, f.logRepo.logs, "una transacción fallida no deja entradas en el ledger")
}

func TestStock_CantidadInvalida(t *testing.T) {
	f := newFixture(decimal.NewFromInt(5))

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		_, err := f.uc.Restock(context.Background(), testUserID, "cons-kapur", dto.StockTransactionRequest{
			LocationID: "loc-gudang",
			Quantity:   qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, f.logRepo.logs)
}

func TestStock_ConsumibleInexistente(t *testing.T) {
	f := newFixture(decimal.Zero)

	_, err := f.uc.Restock(context.Background(), testUserID, "cons-fantasma", dto.StockTransactionRequest{
		LocationID: "loc-gudang",
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStock_UbicacionInexistente(t *testing.T) {
	f := newFixture(decimal.Zero)

	_, err := f.uc.Use(context.Background(), testUserID, "cons-kapur", dto.StockTransactionRequest{
		LocationID: "loc-fantasma",
		Quantity:   decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogs_ConsumibleInexistente(t *testing.T) {
	f := newFixture(decimal.Zero)

	_, err := f.uc.Logs(context.Background(), "cons-fantasma", 20, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// BelowReorder ordena por déficit descendente (empate por código) y sugiere
// pedir hasta el punto de reorden.
func TestBelowReorder_PrioridadYSugerencia(t *testing.T) {
	f := newFixture(decimal.Zero)
	f.stockRepo.below = []repository.BelowReorderItem{
		{ConsumableID: "c1", Code: "KPR", LocationID: "loc-gudang", Quantity: decimal.NewFromInt(8), ReorderPoint: decimal.NewFromInt(10)},
		{ConsumableID: "c2", Code: "SPD", LocationID: "loc-gudang", Quantity: decimal.Zero, ReorderPoint: decimal.NewFromInt(12)},
		{ConsumableID: "c3", Code: "TNR", LocationID: "loc-gudang", Quantity: decimal.NewFromInt(3), ReorderPoint: decimal.NewFromInt(5)},
	}

	out, err := f.uc.BelowReorder(context.Background(), "loc-gudang")
	require.NoError(t, err)
	require.Len(t, out, 3)

	// SPD tiene el mayor déficit (12), luego KPR y TNR (2 cada uno, desempate por código).
	assert.Equal(t, "SPD", out[0].Code)
	assert.Equal(t, 1, out[0].Priority)
	assert.True(t, out[0].SuggestedOrderQty.Equal(decimal.NewFromInt(12)))

	assert.Equal(t, "KPR", out[1].Code)
	assert.Equal(t, 2, out[1].Priority)
	assert.True(t, out[1].SuggestedOrderQty.Equal(decimal.NewFromInt(2)))

	assert.Equal(t, "TNR", out[2].Code)
	assert.Equal(t, 3, out[2].Priority)
}
