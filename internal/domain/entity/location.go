package entity

import "time"

// Location representa un espacio físico de la escuela (aula, laboratorio, bodega).
// La tripleta (Name, Building, Floor) es única; Code se deriva al crearla.
type Location struct {
	ID        string
	Name      string // suele iniciar con el número de sala: "301 Lab"
	Building  string
	Floor     string
	Code      string // derivado: G{building}-L{floor}-R{room}
	CreatedAt time.Time
	UpdatedAt time.Time
}
