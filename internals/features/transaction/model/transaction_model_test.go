package model

import "testing"

func TestTransactionTypeScan(t *testing.T) {
	var typ TransactionType

	if err := typ.Scan("DEPOSIT "); err != nil || typ != TransactionTypeDeposit {
		t.Fatalf("scan string: %q, err=%v", typ, err)
	}
	if err := typ.Scan([]byte("withdrawal")); err != nil || typ != TransactionTypeWithdrawal {
		t.Fatalf("scan bytes: %q, err=%v", typ, err)
	}
	if err := typ.Scan(nil); err != nil || typ != "" {
		t.Fatalf("scan nil: %q, err=%v", typ, err)
	}
	// tipe driver tak dikenal harus error, bukan panic
	if err := typ.Scan(42); err == nil {
		t.Fatalf("scan int lolos tanpa error")
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !TransactionTypeDeposit.Valid() || !TransactionTypeWithdrawal.Valid() {
		t.Fatalf("tipe sah dianggap tidak valid")
	}
	if TransactionType("transfer").Valid() {
		t.Fatalf("tipe asing dianggap valid")
	}
}
