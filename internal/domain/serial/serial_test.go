package serial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/sarpras-api/internal/domain/serial"
)

// Escenario del alcance producto: "LTP" sin activos previos → "LTP-0001".
func TestProductScoped_SinActivosPrevios(t *testing.T) {
	got := serial.ProductScoped("LTP", 0)
	assert.Equal(t, "LTP-0001", got)
}

func TestProductScoped_RellenoDeCeros(t *testing.T) {
	assert.Equal(t, "MJA-0042", serial.ProductScoped("MJA", 41))
	assert.Equal(t, "MJA-1000", serial.ProductScoped("MJA", 999))
	// Más de 4 dígitos: el ancho crece, no se trunca
	assert.Equal(t, "MJA-10001", serial.ProductScoped("MJA", 10000))
}

// Escenario del alcance ubicación+producto: edificio "A", piso "3",
// nombre "301 Lab", código "KUR", 2 activos previos → "GA/L3/R301/KUR003".
func TestLocationScoped_EscenarioLaboratorio(t *testing.T) {
	got := serial.LocationScoped("A", "3", "301 Lab", "KUR", 2)
	assert.Equal(t, "GA/L3/R301/KUR003", got)
}

func TestLocationScoped_PrimerActivo(t *testing.T) {
	got := serial.LocationScoped("B", "1", "105 Aula", "LTP", 0)
	assert.Equal(t, "GB/L1/R105/LTP001", got)
}

// Nombre de ubicación sin prefijo numérico → sala "N/A".
func TestLocationScoped_NombreSinDigitos(t *testing.T) {
	got := serial.LocationScoped("A", "2", "Biblioteca", "RAK", 5)
	assert.Equal(t, "GA/L2/RN/A/RAK006", got)
}

func TestRoomNumber(t *testing.T) {
	assert.Equal(t, "301", serial.RoomNumber("301 Lab"))
	assert.Equal(t, "12", serial.RoomNumber("12B Bodega"))
	assert.Equal(t, serial.RoomFallback, serial.RoomNumber("Biblioteca"))
	assert.Equal(t, serial.RoomFallback, serial.RoomNumber(""))
	// Solo dígitos del prefijo, no dígitos intermedios
	assert.Equal(t, serial.RoomFallback, serial.RoomNumber("Sala 301"))
}
