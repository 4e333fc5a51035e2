package ruleset

import (
	"errors"
	"testing"

	"github.com/opencode-ai/blockseq/internal/cooking"
	"github.com/opencode-ai/blockseq/internal/dressing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(cooking.New())

	if got := registry.Get(cooking.Name); got == nil {
		t.Fatal("expected cooking ruleset")
	}
	if got := registry.Get("missing"); got != nil {
		t.Fatalf("expected nil for missing ruleset, got %v", got)
	}

	err := registry.Register(cooking.New())
	if !errors.Is(err, ErrRulesetRegistered) {
		t.Fatalf("expected ErrRulesetRegistered, got %v", err)
	}
}

func TestRegistryLookupUnknown(t *testing.T) {
	_, err := NewRegistry().Lookup("baking")
	if !errors.Is(err, ErrUnknownRuleset) {
		t.Fatalf("expected ErrUnknownRuleset, got %v", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(dressing.New())

	if !registry.Unregister(dressing.Name) {
		t.Fatal("expected Unregister to return true")
	}
	if registry.Unregister(dressing.Name) {
		t.Fatal("expected second Unregister to return false")
	}
}

func TestDefaultRegistry(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != cooking.Name || names[1] != dressing.Name {
		t.Fatalf("unexpected default rulesets: %v", names)
	}

	list := List()
	if len(list) != 2 || list[0].Name() != cooking.Name {
		t.Fatalf("unexpected list order")
	}

	rs, err := Lookup(dressing.Name)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if rs.Vocabulary().Name != dressing.Name {
		t.Fatalf("vocabulary mismatch: %s", rs.Vocabulary().Name)
	}
}

func TestRulesetVocabulariesCoverTheirKinds(t *testing.T) {
	for _, rs := range List() {
		v := rs.Vocabulary()
		if len(v.Kinds()) != 6 {
			t.Errorf("%s: expected 6 kinds, got %d", rs.Name(), len(v.Kinds()))
		}
	}
}
