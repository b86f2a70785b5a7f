// Package serial implementa el formato de los números de serie (asset tags)
// de los activos físicos. Es lógica pura: el conteo de la secuencia lo aporta
// el caller (capa de aplicación) y aquí solo se formatea.
//
// Dos variantes de alcance:
//
//	producto:            {CODE}-{seq:04d}              → "LTP-0001"
//	ubicación+producto:  G{edificio}/L{piso}/R{sala}/{CODE}{seq:03d} → "GA/L3/R301/KUR003"
//
// La sala (room) es el prefijo numérico del nombre de la ubicación; si el
// nombre no inicia con dígitos se usa el literal "N/A".
package serial

import "fmt"

// RoomFallback literal usado cuando el nombre de la ubicación no tiene prefijo numérico.
const RoomFallback = "N/A"

// RoomNumber extrae el prefijo numérico del nombre de una ubicación
// ("301 Lab" → "301"). Devuelve RoomFallback si no hay dígitos al inicio.
func RoomNumber(locationName string) string {
	i := 0
	for i < len(locationName) && locationName[i] >= '0' && locationName[i] <= '9' {
		i++
	}
	if i == 0 {
		return RoomFallback
	}
	return locationName[:i]
}

// ProductScoped formatea el serial con alcance de producto: {CODE}-{seq:04d}.
// existing es el número de activos ya registrados para ese código de producto.
func ProductScoped(productCode string, existing int64) string {
	return fmt.Sprintf("%s-%04d", productCode, existing+1)
}

// LocationScoped formatea el serial con alcance ubicación+producto:
// G{edificio}/L{piso}/R{sala}/{CODE}{seq:03d}. existing es el número de activos
// ya registrados para ese producto en esa ubicación.
func LocationScoped(building, floor, locationName, productCode string, existing int64) string {
	room := RoomNumber(locationName)
	return fmt.Sprintf("G%s/L%s/R%s/%s%03d", building, floor, room, productCode, existing+1)
}
