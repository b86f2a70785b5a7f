package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/application/dto"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

const testUserID = "00000000-0000-0000-0000-000000000001"

func fixtureLab() *entity.Location {
	return &entity.Location{
		ID:       "loc-301",
		Name:     "301 Lab Komputer",
		Building: "A",
		Floor:    "3",
		Code:     "GA-L3-R301",
	}
}

func fixtureProducts() (*entity.Product, *entity.Product) {
	kur := &entity.Product{ID: "prod-kur", Code: "KUR", Name: "Kursi Siswa", Unit: entity.UnitPcs}
	mja := &entity.Product{ID: "prod-mja", Code: "MJA", Name: "Meja Siswa", Unit: entity.UnitPcs}
	return kur, mja
}

func buildBulkUseCase(existing ...*entity.Asset) (*assets.BulkRegisterUseCase, *fakeAssetRepo) {
	kur, mja := fixtureProducts()
	productRepo := newFakeProductRepo(kur, mja)
	locationRepo := newFakeLocationRepo(fixtureLab())
	assetRepo := newFakeAssetRepo(productRepo, existing...)
	uc := assets.NewBulkRegisterUseCase(&fakeTxRunner{repo: assetRepo}, productRepo, locationRepo)
	return uc, assetRepo
}

// Cada unidad del lote recibe un serial distinto, y las líneas repetidas del
// mismo producto continúan la secuencia en lugar de reiniciarla.
func TestBulkRegister_SerialesSecuencialesSinDuplicados(t *testing.T) {
	// Dos KUR ya registrados en la sala: la secuencia arranca en 003.
	uc, repo := buildBulkUseCase(
		&entity.Asset{ID: "a1", SerialNumber: "GA/L3/R301/KUR001", ProductID: "prod-kur", LocationID: "loc-301"},
		&entity.Asset{ID: "a2", SerialNumber: "GA/L3/R301/KUR002", ProductID: "prod-kur", LocationID: "loc-301"},
	)

	out, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-301",
		Items: []dto.BulkItemRequest{
			{ProductID: "prod-kur", Quantity: 2},
			{ProductID: "prod-mja", Quantity: 1},
			{ProductID: "prod-kur", Quantity: 1}, // segunda línea del mismo producto
		},
	})
	require.NoError(t, err)
	require.Equal(t, 4, out.Total)

	serials := make([]string, 0, len(out.Created))
	for _, c := range out.Created {
		serials = append(serials, c.SerialNumber)
	}
	assert.Equal(t, []string{
		"GA/L3/R301/KUR003",
		"GA/L3/R301/KUR004",
		"GA/L3/R301/MJA001",
		"GA/L3/R301/KUR005",
	}, serials)

	// Persistidos: 2 preexistentes + 4 del lote.
	assert.Len(t, repo.assets, 6)
}

// Condición por defecto baik cuando el ítem no la trae.
func TestBulkRegister_CondicionPorDefecto(t *testing.T) {
	uc, repo := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-301",
		Items: []dto.BulkItemRequest{
			{ProductID: "prod-kur", Quantity: 1},
			{ProductID: "prod-mja", Quantity: 1, Condition: entity.ConditionLightDamage},
		},
	})
	require.NoError(t, err)
	require.Len(t, repo.assets, 2)
	assert.Equal(t, entity.ConditionGood, repo.assets[0].Condition)
	assert.Equal(t, entity.ConditionLightDamage, repo.assets[1].Condition)
}

// Cantidad <= 0 se rechaza antes de generar serial alguno.
func TestBulkRegister_CantidadInvalida(t *testing.T) {
	uc, repo := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-301",
		Items: []dto.BulkItemRequest{
			{ProductID: "prod-kur", Quantity: 1},
			{ProductID: "prod-mja", Quantity: 0},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.assets, "un lote inválido no debe persistir ninguna unidad")
}

func TestBulkRegister_LoteVacio(t *testing.T) {
	uc, _ := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{LocationID: "loc-301"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		Items: []dto.BulkItemRequest{{ProductID: "prod-kur", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBulkRegister_CondicionInvalida(t *testing.T) {
	uc, _ := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-301",
		Items:      []dto.BulkItemRequest{{ProductID: "prod-kur", Quantity: 1, Condition: "hancur"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBulkRegister_UbicacionInexistente(t *testing.T) {
	uc, _ := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-desconocida",
		Items:      []dto.BulkItemRequest{{ProductID: "prod-kur", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto inexistente en cualquier línea aborta el lote completo: ninguna
// unidad de las líneas anteriores queda persistida.
func TestBulkRegister_ProductoInexistente_RevierteTodo(t *testing.T) {
	uc, repo := buildBulkUseCase()

	_, err := uc.Register(context.Background(), testUserID, dto.BulkRegisterRequest{
		LocationID: "loc-301",
		Items: []dto.BulkItemRequest{
			{ProductID: "prod-kur", Quantity: 3},
			{ProductID: "prod-fantasma", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, repo.assets, "la transacción debe revertir todas las unidades")
}
