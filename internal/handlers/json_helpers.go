package handlers

import "strings"

// Los PUT del API son parciales: solo se aplican las claves presentes en el
// body. Para eso los updates se decodifican a un mapa y estos helpers
// distinguen "ausente" de "presente con valor nulo o vacío".

func getString(data map[string]any, key string) (string, bool) {
	v, ok := data[key]
	if !ok {
		return "", false
	}
	s, _ := v.(string)
	return s, true
}

func getFloat(data map[string]any, key string) (float64, bool) {
	v, ok := data[key]
	if !ok {
		return 0, false
	}
	f, _ := v.(float64)
	return f, true
}

// getUint devuelve el valor como puntero: presente con nulo o cero → nil.
func getUint(data map[string]any, key string) (*uint, bool) {
	v, ok := data[key]
	if !ok {
		return nil, false
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return nil, true
	}
	id := uint(f)
	return &id, true
}

// nilIfEmpty normaliza strings opcionales del contrato (email, teléfono).
func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
