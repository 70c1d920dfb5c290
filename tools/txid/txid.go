package txid

import (
	"fmt"
	"math/rand"
)

// New generates a payment transaction reference in the TRX-NNNNNN form used
// on customer receipts.
func New() string {
	return fmt.Sprintf("TRX-%06d", 100000+rand.Intn(900000))
}

// IsValid reports whether a reference matches the TRX-NNNNNN form.
func IsValid(ref string) bool {
	if len(ref) != 10 || ref[:4] != "TRX-" {
		return false
	}
	for _, c := range ref[4:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
