package task

import (
	"errors"
	"testing"
)

func TestVerbs(t *testing.T) {
	expected := []string{"add", "update", "mark-in-progress", "mark-done", "delete", "list"}
	got := Verbs()

	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestDispatch_NoArgs(t *testing.T) {
	store := NewStore()

	res := Dispatch(store, nil, testNow)

	if !errors.Is(res.Err, ErrNoVerb) || !errors.Is(res.Err, ErrUsage) {
		t.Fatalf("expected no-verb usage error, got %v", res.Err)
	}
	if res.Mutated {
		t.Error("expected no mutation")
	}
}

func TestDispatch_UnknownVerb(t *testing.T) {
	for _, verb := range []string{"remove", "ADD", "list ", ""} {
		store := seededStore(t)
		before := encodeForCompare(t, store)

		res := Dispatch(store, []string{verb, "1"}, testNow)

		if !errors.Is(res.Err, ErrUnknownVerb) {
			t.Errorf("Dispatch(%q): expected ErrUnknownVerb, got %v", verb, res.Err)
		}
		if res.Kind() != KindUsage {
			t.Errorf("Dispatch(%q): expected usage kind, got %s", verb, res.Kind())
		}
		if after := encodeForCompare(t, store); after != before {
			t.Errorf("Dispatch(%q) changed the store", verb)
		}
	}
}

func TestDispatch_RoutesToHandler(t *testing.T) {
	store := NewStore()

	res := Dispatch(store, []string{"add", "Buy milk"}, testNow)
	if res.Err != nil || res.Verb != VerbAdd {
		t.Fatalf("unexpected add result %+v", res)
	}

	res = Dispatch(store, []string{"mark-in-progress", "1"}, testNow)
	if res.Err != nil || store.Tasks[0].Status != StatusInProgress {
		t.Fatalf("unexpected mark-in-progress result %+v", res)
	}

	res = Dispatch(store, []string{"list", "in-progress"}, testNow)
	if res.Err != nil || len(res.Tasks) != 1 {
		t.Fatalf("unexpected list result %+v", res)
	}
}

func TestHandlerFor(t *testing.T) {
	for _, verb := range Verbs() {
		if _, ok := HandlerFor(verb); !ok {
			t.Errorf("expected handler for %q", verb)
		}
	}
	if _, ok := HandlerFor("help"); ok {
		t.Error("expected no handler for help")
	}
}
