package txn

import (
	"reflect"
	"testing"

	"github.com/niklabh/AptosAgora/internal/types"
)

const moduleAddr = "0xabc123"

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(moduleAddr)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}
	return b
}

func TestCreateContent_ArgumentOrder(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	p, err := b.CreateContent("c1", "hash1", types.ContentArticle, "desc", []string{"a", "b"})
	if err != nil {
		t.Fatalf("CreateContent: %v", err)
	}
	if p.Function != moduleAddr+"::content_registry::create_content" {
		t.Fatalf("unexpected function %q", p.Function)
	}
	if p.Type != "entry_function_payload" {
		t.Fatalf("unexpected payload type %q", p.Type)
	}
	if len(p.TypeArguments) != 0 {
		t.Fatalf("expected no type arguments, got %v", p.TypeArguments)
	}
	want := []any{"c1", "hash1", "article", "desc", []string{"a", "b"}}
	if !reflect.DeepEqual(p.Arguments, want) {
		t.Fatalf("arguments = %v, want %v", p.Arguments, want)
	}
}

func TestCreateContent_Deterministic(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	p1, err := b.CreateContent("c1", "h", types.ContentVideo, "d", []string{"z", "a", "m"})
	if err != nil {
		t.Fatalf("CreateContent: %v", err)
	}
	p2, err := b.CreateContent("c1", "h", types.ContentVideo, "d", []string{"z", "a", "m"})
	if err != nil {
		t.Fatalf("CreateContent: %v", err)
	}
	if !reflect.DeepEqual(p1, p2) {
		t.Fatalf("builder not deterministic: %v vs %v", p1, p2)
	}
	// Tags keep caller order.
	if !reflect.DeepEqual(p1.Arguments[4], []string{"z", "a", "m"}) {
		t.Fatalf("tags reordered: %v", p1.Arguments[4])
	}
}

func TestCreateContent_Validation(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	if _, err := b.CreateContent("", "h", types.ContentArticle, "d", nil); err == nil {
		t.Fatal("expected error for missing content id")
	}
	if _, err := b.CreateContent("c1", "", types.ContentArticle, "d", nil); err == nil {
		t.Fatal("expected error for missing content hash")
	}
	if _, err := b.CreateContent("c1", "h", types.ContentKind("hologram"), "d", nil); err == nil {
		t.Fatal("expected error for unknown content type")
	}
}

func TestEngage(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	p, err := b.Engage("c1", types.EngageLike)
	if err != nil {
		t.Fatalf("Engage: %v", err)
	}
	want := []any{"c1", "like"}
	if !reflect.DeepEqual(p.Arguments, want) {
		t.Fatalf("arguments = %v, want %v", p.Arguments, want)
	}
	if _, err := b.Engage("c1", types.EngagementKind("boost")); err == nil {
		t.Fatal("expected error for unknown engagement type")
	}
}

func TestCreateAgent_SerializesConfiguration(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	cfg := map[string]string{"style": "conversational", "model": "gpt-4"}
	p, err := b.CreateAgent("agent-1", types.AgentCurator, "Curio", "curates things", cfg, true)
	if err != nil {
		t.Fatalf("CreateAgent: %v", err)
	}
	want := []any{"agent-1", 2, "Curio", "curates things", `{"model":"gpt-4","style":"conversational"}`, true}
	if !reflect.DeepEqual(p.Arguments, want) {
		t.Fatalf("arguments = %v, want %v", p.Arguments, want)
	}
}

func TestAgentLifecyclePayloads(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	act, err := b.ActivateAgent("a1")
	if err != nil {
		t.Fatalf("ActivateAgent: %v", err)
	}
	if act.Function != moduleAddr+"::agent_framework::activate_agent" {
		t.Fatalf("unexpected function %q", act.Function)
	}
	deact, err := b.DeactivateAgent("a1")
	if err != nil {
		t.Fatalf("DeactivateAgent: %v", err)
	}
	if deact.Function != moduleAddr+"::agent_framework::deactivate_agent" {
		t.Fatalf("unexpected function %q", deact.Function)
	}
}

func TestProfilePayloads(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	links := map[string]string{"twitter": "https://x.com/u", "github": "https://github.com/u"}
	p, err := b.CreateProfile("Uma", "builds things", links)
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	want := []any{"Uma", "builds things", `{"github":"https://github.com/u","twitter":"https://x.com/u"}`}
	if !reflect.DeepEqual(p.Arguments, want) {
		t.Fatalf("arguments = %v, want %v", p.Arguments, want)
	}
	up, err := b.UpdateProfile("Uma", "still builds", links)
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if up.Function != moduleAddr+"::creator_profiles::update_profile" {
		t.Fatalf("unexpected function %q", up.Function)
	}
}

func TestRateContent_Bounds(t *testing.T) {
	t.Parallel()
	b := newTestBuilder(t)
	p, err := b.RateContent("c1", 5, "great")
	if err != nil {
		t.Fatalf("RateContent: %v", err)
	}
	want := []any{"c1", 5, "great"}
	if !reflect.DeepEqual(p.Arguments, want) {
		t.Fatalf("arguments = %v, want %v", p.Arguments, want)
	}
	if _, err := b.RateContent("c1", 0, ""); err == nil {
		t.Fatal("expected error for rating below minimum")
	}
	if _, err := b.RateContent("c1", 6, ""); err == nil {
		t.Fatal("expected error for rating above maximum")
	}
}

func TestNewBuilder_RejectsBadAddress(t *testing.T) {
	t.Parallel()
	if _, err := NewBuilder("not-an-address"); err == nil {
		t.Fatal("expected error for malformed module address")
	}
}
