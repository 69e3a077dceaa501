package feed

import (
	"reflect"
	"testing"

	"github.com/niklabh/AptosAgora/internal/types"
)

func sampleContent() []types.ContentRecord {
	return []types.ContentRecord{
		{ID: "c1", Title: "DeFi Yield Guide", Description: "stablecoin strategies", ContentType: types.ContentArticle, Tags: []string{"defi"}, CreatedAt: 100, EngagementCount: 5},
		{ID: "c2", Title: "NFT Minting Walkthrough", Description: "step by step", ContentType: types.ContentVideo, Tags: []string{"nft"}, CreatedAt: 300, EngagementCount: 2},
		{ID: "c3", Title: "Validator Economics", Description: "staking and defi overlap", ContentType: types.ContentArticle, Tags: []string{"defi", "nft"}, CreatedAt: 200, EngagementCount: 9},
		{ID: "c4", Title: "Untagged Post", Description: "", ContentType: types.ContentImage, Tags: nil, CreatedAt: 400, EngagementCount: 9},
	}
}

func ids(items []types.ContentRecord) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	in := sampleContent()
	snapshot := sampleContent()

	_ = Apply(in, Filter{SearchTerm: "defi", SortBy: SortPopular})

	if !reflect.DeepEqual(in, snapshot) {
		t.Fatalf("input mutated: %v", in)
	}
}

func TestApply_Deterministic(t *testing.T) {
	t.Parallel()
	in := sampleContent()
	f := Filter{Tags: []string{"defi"}, SortBy: SortPopular}
	first := Apply(in, f)
	for i := 0; i < 5; i++ {
		if again := Apply(in, f); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differs: %v vs %v", i, ids(again), ids(first))
		}
	}
}

func TestApply_TagsAreUnion(t *testing.T) {
	t.Parallel()
	in := sampleContent()

	defi := Apply(in, Filter{Tags: []string{"defi"}})
	if got := ids(defi); !reflect.DeepEqual(got, []string{"c3", "c1"}) {
		t.Fatalf("defi = %v", got)
	}
	nft := Apply(in, Filter{Tags: []string{"nft"}})
	if got := ids(nft); !reflect.DeepEqual(got, []string{"c2", "c3"}) {
		t.Fatalf("nft = %v", got)
	}
	// Selecting both tags widens: every item matching either appears.
	both := Apply(in, Filter{Tags: []string{"defi", "nft"}})
	if got := ids(both); !reflect.DeepEqual(got, []string{"c2", "c3", "c1"}) {
		t.Fatalf("defi+nft = %v", got)
	}
	if len(both) < len(defi) || len(both) < len(nft) {
		t.Fatal("adding a tag narrowed the result")
	}
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	got := Apply(sampleContent(), Filter{SearchTerm: "DEFI"})
	if !reflect.DeepEqual(ids(got), []string{"c3", "c1"}) {
		t.Fatalf("search = %v", ids(got))
	}
	// Description matches too.
	got = Apply(sampleContent(), Filter{SearchTerm: "step by"})
	if !reflect.DeepEqual(ids(got), []string{"c2"}) {
		t.Fatalf("search = %v", ids(got))
	}
}

func TestApply_KindFilter(t *testing.T) {
	t.Parallel()
	got := Apply(sampleContent(), Filter{Kind: "article"})
	if !reflect.DeepEqual(ids(got), []string{"c3", "c1"}) {
		t.Fatalf("articles = %v", ids(got))
	}
}

func TestApply_SortRecentDefault(t *testing.T) {
	t.Parallel()
	got := Apply(sampleContent(), Filter{})
	if !reflect.DeepEqual(ids(got), []string{"c4", "c2", "c3", "c1"}) {
		t.Fatalf("recent = %v", ids(got))
	}
}

func TestApply_SortPopularStableTies(t *testing.T) {
	t.Parallel()
	// c3 and c4 tie on engagement; c3 precedes c4 in the input and must keep
	// that relative order.
	got := Apply(sampleContent(), Filter{SortBy: SortPopular})
	if !reflect.DeepEqual(ids(got), []string{"c3", "c4", "c1", "c2"}) {
		t.Fatalf("popular = %v", ids(got))
	}
}

func TestApply_EmptyInput(t *testing.T) {
	t.Parallel()
	got := Apply(nil, Filter{SearchTerm: "x"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestApplyAgents(t *testing.T) {
	t.Parallel()
	in := []types.AgentRecord{
		{ID: "a1", Name: "Curio", Description: "curates feeds", AgentType: types.AgentCurator, CreatedAt: 10, UsageCount: 3},
		{ID: "a2", Name: "Scribe", Description: "writes drafts", AgentType: types.AgentCreator, CreatedAt: 30, UsageCount: 8},
		{ID: "a3", Name: "Herald", Description: "distributes and curates", AgentType: types.AgentDistributor, CreatedAt: 20, UsageCount: 8},
	}

	got := ApplyAgents(in, Filter{SearchTerm: "curates"})
	if len(got) != 2 || got[0].ID != "a3" || got[1].ID != "a1" {
		t.Fatalf("search = %+v", got)
	}

	got = ApplyAgents(in, Filter{Kind: "creator"})
	if len(got) != 1 || got[0].ID != "a2" {
		t.Fatalf("kind = %+v", got)
	}

	// a2 and a3 tie on usage; input order wins.
	got = ApplyAgents(in, Filter{SortBy: SortPopular})
	if got[0].ID != "a2" || got[1].ID != "a3" || got[2].ID != "a1" {
		t.Fatalf("popular = %+v", got)
	}
}
