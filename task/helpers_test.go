package task

import (
	"testing"
	"time"
)

var testNow = time.Date(2024, time.March, 14, 9, 26, 53, 0, time.Local)

func encodeForCompare(t *testing.T, store *Store) string {
	t.Helper()

	data, err := encodeStore(store)
	if err != nil {
		t.Fatalf("encode store: %v", err)
	}
	return string(data)
}

// seededStore returns the store after adding "Buy milk" (2%) and "Clean".
func seededStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore()
	if res := Add(store, []string{"add", "Buy milk", "2%"}, testNow); res.Err != nil {
		t.Fatalf("add Buy milk: %v", res.Err)
	}
	if res := Add(store, []string{"add", "Clean"}, testNow); res.Err != nil {
		t.Fatalf("add Clean: %v", res.Err)
	}
	return store
}
