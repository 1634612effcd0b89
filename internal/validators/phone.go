package validators

import "strings"

// NormalizePhone keeps digits and a leading '+'.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid: 10 a 15 dígitos depois de normalizado (E.164 cabe aqui).
func IsPhoneValid(phone string) bool {
	digits := strings.TrimPrefix(NormalizePhone(phone), "+")
	return len(digits) >= 10 && len(digits) <= 15
}
