package gateways

import (
	"strings"

	"github.com/google/uuid"
)

// Reference tokens keep 20 hex characters (80 random bits) of a v4 UUID:
// short enough to read on a receipt, far beyond any realistic collision.
const referenceTokenLen = 20

// newReference builds a family-prefixed transaction reference such as
// PAGS-9F1C0A7E2B8D4C6E1A3F.
func newReference(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return prefix + "-" + token[:referenceTokenLen]
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// maskCard keeps only the last four digits for traces and audit lines.
func maskCard(card string) string {
	if len(card) <= 4 {
		return "****"
	}
	return "****" + card[len(card)-4:]
}
