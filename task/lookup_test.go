package task

import "testing"

func TestParseID(t *testing.T) {
	tests := []struct {
		input string
		id    int
		ok    bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, true},
		{"01", 1, true},
		{"", 0, false},
		{"dog", 0, false},
		{"3.14", 0, false},
		{"-1", 0, false},
		{"+1", 0, false},
		{" 1", 0, false},
		{"99999999999999999999999", 0, false},
	}

	for _, tt := range tests {
		id, ok := ParseID(tt.input)
		if id != tt.id || ok != tt.ok {
			t.Errorf("ParseID(%q) = (%d, %v), expected (%d, %v)", tt.input, id, ok, tt.id, tt.ok)
		}
	}
}

func TestFindByID(t *testing.T) {
	store := seededStore(t)

	found, ok := FindByID(store, "2")
	if !ok {
		t.Fatal("expected to find task 2")
	}
	if found.Name != "Clean" {
		t.Errorf("expected task 2 to be Clean, got %q", found.Name)
	}

	found.Description = "via pointer"
	if store.Tasks[1].Description != "via pointer" {
		t.Errorf("expected FindByID to return a pointer into the store")
	}
}

func TestFindByID_NotFound(t *testing.T) {
	store := seededStore(t)

	for _, identifier := range []string{"999", "0", "dog", "3.14", "", "1.0"} {
		if _, ok := FindByID(store, identifier); ok {
			t.Errorf("FindByID(%q) unexpectedly matched", identifier)
		}
	}
}

func TestFindByID_EmptyStore(t *testing.T) {
	if _, ok := FindByID(NewStore(), "1"); ok {
		t.Fatal("expected no match in empty store")
	}
}
