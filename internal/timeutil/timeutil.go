package timeutil

import "time"

// Formatos de fecha del contrato HTTP.
const (
	LayoutFecha     = "2006-01-02"
	LayoutFechaHora = "2006-01-02 15:04:05"
)

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseFechaHora accepts the wire datetime with or without the "T" separator.
func ParseFechaHora(s string) (time.Time, error) {
	if t, err := time.Parse(LayoutFechaHora, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
