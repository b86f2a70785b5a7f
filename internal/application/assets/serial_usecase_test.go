package assets_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/sarpras-api/internal/application/assets"
	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
)

func buildSerialUseCase(existing ...*entity.Asset) (*assets.SerialUseCase, *fakeAssetRepo) {
	kur, mja := fixtureProducts()
	ltp := &entity.Product{ID: "prod-ltp", Code: "LTP", Name: "Laptop", Unit: entity.UnitPcs}
	productRepo := newFakeProductRepo(kur, mja, ltp)
	locationRepo := newFakeLocationRepo(fixtureLab())
	assetRepo := newFakeAssetRepo(productRepo, existing...)
	return assets.NewSerialUseCase(productRepo, locationRepo, assetRepo), assetRepo
}

func TestNextProductSerial_PrimerActivo(t *testing.T) {
	uc, _ := buildSerialUseCase()

	sn, err := uc.NextProductSerial(context.Background(), "prod-ltp")
	require.NoError(t, err)
	assert.Equal(t, "LTP-0001", sn)
}

func TestNextProductSerial_ContinuaSecuencia(t *testing.T) {
	uc, repo := buildSerialUseCase(
		&entity.Asset{ID: "a1", SerialNumber: "LTP-0001", ProductID: "prod-ltp", LocationID: "loc-301"},
		&entity.Asset{ID: "a2", SerialNumber: "LTP-0002", ProductID: "prod-ltp", LocationID: "loc-301"},
		&entity.Asset{ID: "a3", SerialNumber: "LTP-0003", ProductID: "prod-ltp", LocationID: "loc-301"},
	)

	sn, err := uc.NextProductSerial(context.Background(), "prod-ltp")
	require.NoError(t, err)
	assert.Equal(t, "LTP-0004", sn)

	// Solo lectura: no reserva ni escribe nada.
	assert.Len(t, repo.assets, 3)
}

func TestNextProductSerial_ProductoInexistente(t *testing.T) {
	uc, _ := buildSerialUseCase()

	_, err := uc.NextProductSerial(context.Background(), "prod-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNextProductSerial_SinID(t *testing.T) {
	uc, _ := buildSerialUseCase()

	_, err := uc.NextProductSerial(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNextLocationSerial_ContinuaSecuenciaDeLaSala(t *testing.T) {
	uc, _ := buildSerialUseCase(
		&entity.Asset{ID: "a1", SerialNumber: "GA/L3/R301/KUR001", ProductID: "prod-kur", LocationID: "loc-301"},
		&entity.Asset{ID: "a2", SerialNumber: "GA/L3/R301/KUR002", ProductID: "prod-kur", LocationID: "loc-301"},
	)

	sn, err := uc.NextLocationSerial(context.Background(), "prod-kur", "loc-301")
	require.NoError(t, err)
	assert.Equal(t, "GA/L3/R301/KUR003", sn)
}

func TestNextLocationSerial_UbicacionInexistente(t *testing.T) {
	uc, _ := buildSerialUseCase()

	_, err := uc.NextLocationSerial(context.Background(), "prod-kur", "loc-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
