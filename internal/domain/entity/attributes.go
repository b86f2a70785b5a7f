package entity

import (
	"encoding/json"
	"fmt"
)

// AttributeValue valor tipado de un atributo dinámico de activo: número o texto.
// Se serializa como el valor JSON desnudo (3.5 o "azul"), nunca como objeto.
type AttributeValue struct {
	Number *float64
	Text   *string
}

// NumberValue construye un AttributeValue numérico.
func NumberValue(n float64) AttributeValue { return AttributeValue{Number: &n} }

// TextValue construye un AttributeValue de texto.
func TextValue(s string) AttributeValue { return AttributeValue{Text: &s} }

// MarshalJSON emite el número o el string según el caso.
func (v AttributeValue) MarshalJSON() ([]byte, error) {
	if v.Number != nil {
		return json.Marshal(*v.Number)
	}
	if v.Text != nil {
		return json.Marshal(*v.Text)
	}
	return []byte("null"), nil
}

// UnmarshalJSON acepta números y strings JSON; cualquier otro tipo es rechazado.
func (v *AttributeValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		v.Number = &n
		v.Text = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = &s
		v.Number = nil
		return nil
	}
	return fmt.Errorf("attribute: se esperaba número o string, recibido %s", string(data))
}

// Attributes mapa abierto de atributos por activo. Las claves son arbitrarias;
// los valores solo pueden ser número o texto.
type Attributes map[string]AttributeValue
