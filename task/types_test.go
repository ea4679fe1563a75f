package task

import (
	"errors"
	"testing"
)

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status Status
		valid  bool
	}{
		{StatusTodo, true},
		{StatusInProgress, true},
		{StatusDone, true},
		{"", false},
		{"in_progress", false},
		{"DONE", false},
	}

	for _, tt := range tests {
		if got := tt.status.IsValid(); got != tt.valid {
			t.Errorf("Status(%q).IsValid() = %v, expected %v", tt.status, got, tt.valid)
		}
	}
}

func TestNewStore(t *testing.T) {
	store := NewStore()

	if store.NextID != 1 {
		t.Errorf("expected next_id 1, got %d", store.NextID)
	}
	if store.Tasks == nil || len(store.Tasks) != 0 {
		t.Errorf("expected empty non-nil tasks, got %#v", store.Tasks)
	}
}

func TestNewTask(t *testing.T) {
	store := NewStore()
	store.NextID = 7

	created, err := NewTask(store, "Write report", "", testNow)
	if err != nil {
		t.Fatalf("NewTask failed: %v", err)
	}

	if created.ID != 7 {
		t.Errorf("expected id 7, got %d", created.ID)
	}
	if store.NextID != 8 {
		t.Errorf("expected next_id 8, got %d", store.NextID)
	}
	if created.Status != StatusTodo {
		t.Errorf("expected status todo, got %q", created.Status)
	}
	if created.Description != "" {
		t.Errorf("expected empty description, got %q", created.Description)
	}
	if !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Errorf("expected created_at == updated_at, got %s and %s", created.CreatedAt, created.UpdatedAt)
	}
	if len(store.Tasks) != 0 {
		t.Errorf("NewTask should not append, got %d tasks", len(store.Tasks))
	}
}

func TestNewTask_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		store := NewStore()
		_, err := NewTask(store, name, "desc", testNow)
		if !errors.Is(err, ErrEmptyName) {
			t.Errorf("NewTask(%q): expected ErrEmptyName, got %v", name, err)
		}
		if store.NextID != 1 {
			t.Errorf("NewTask(%q): next_id advanced to %d", name, store.NextID)
		}
	}
}

func TestStore_Clone(t *testing.T) {
	store := seededStore(t)
	clone := store.Clone()

	clone.Tasks[0].Description = "changed"
	clone.NextID = 99

	if store.Tasks[0].Description != "2%" {
		t.Errorf("clone shares task storage with original")
	}
	if store.NextID != 3 {
		t.Errorf("clone shares next_id with original")
	}
}

func TestStore_Validate(t *testing.T) {
	valid := seededStore(t)
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected seeded store to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Store)
	}{
		{"zero next_id", func(s *Store) { s.NextID = 0 }},
		{"id not below next_id", func(s *Store) { s.NextID = 2 }},
		{"duplicate id", func(s *Store) { s.Tasks[1].ID = 1 }},
		{"non-positive id", func(s *Store) { s.Tasks[0].ID = 0 }},
		{"empty name", func(s *Store) { s.Tasks[0].Name = " " }},
		{"unknown status", func(s *Store) { s.Tasks[0].Status = "blocked" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(t)
			tt.mutate(store)
			if err := store.Validate(); !errors.Is(err, ErrCorruptStore) {
				t.Fatalf("expected ErrCorruptStore, got %v", err)
			}
		})
	}
}
