package validators

import "strings"

// IsEmailValid hace una validación sintáctica mínima: algo@dominio.tld.
// No consulta DNS para no atar el registro a la red.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " @") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
