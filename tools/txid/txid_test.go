package txid_test

import (
	"testing"

	"github.com/septivank/energy-billing-service/tools/txid"
)

func TestNew_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		ref := txid.New()
		if !txid.IsValid(ref) {
			t.Fatalf("Generated reference %q does not match TRX-NNNNNN", ref)
		}
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"TRX-123456", "TRX-000000", "TRX-999999"}
	for _, ref := range valid {
		if !txid.IsValid(ref) {
			t.Errorf("Expected %q to be valid", ref)
		}
	}

	invalid := []string{"", "TRX-12345", "TRX-1234567", "TRX-12345a", "trx-123456", "REF-123456"}
	for _, ref := range invalid {
		if txid.IsValid(ref) {
			t.Errorf("Expected %q to be invalid", ref)
		}
	}
}
