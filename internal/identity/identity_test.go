package identity

import "testing"

func TestExperimentDeterministic(t *testing.T) {
	a := Experiment("resnet", "alice", "vision")
	b := Experiment("resnet", "alice", "vision")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
}

func TestExperimentDiffersByField(t *testing.T) {
	base := Experiment("resnet", "alice", "vision")
	cases := []string{
		Experiment("resnet50", "alice", "vision"),
		Experiment("resnet", "bob", "vision"),
		Experiment("resnet", "alice", "nlp"),
	}
	for _, c := range cases {
		if c == base {
			t.Fatalf("expected differing id, got collision %q", c)
		}
	}
}

func TestFieldBoundariesAreNotConfusable(t *testing.T) {
	// "ab","c" must not hash the same as "a","bc" — verifies the separator
	// byte actually prevents field-boundary ambiguity.
	a := Model("ab", "c")
	b := Model("a", "bc")
	if a == b {
		t.Fatalf("expected distinct ids for differently-split fields, got %q for both", a)
	}
}

func TestModelDeterministic(t *testing.T) {
	a := Model("resnet", "vision")
	b := Model("resnet", "vision")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
}

func TestModelVersionDeterministic(t *testing.T) {
	a := ModelVersion("m-1", "v1")
	b := ModelVersion("m-1", "v1")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
	if ModelVersion("m-1", "v2") == a {
		t.Fatalf("expected differing id for differing version")
	}
}

func TestMetadataEntryDeterministic(t *testing.T) {
	a := MetadataEntry("lr", "exp-1")
	b := MetadataEntry("lr", "exp-1")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
}

func TestFileDeterministic(t *testing.T) {
	a := File("exp-1", "/tmp/model.pt", "abc123", "Model", 100, 0, 100, 0)
	b := File("exp-1", "/tmp/model.pt", "abc123", "Model", 100, 0, 100, 0)
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
	if File("exp-1", "/tmp/model.pt", "abc123", "Model", 100, 0, 200, 0) == a {
		t.Fatalf("expected differing id when updated_at changes")
	}
}

func TestArtifactDeterministic(t *testing.T) {
	a := Artifact("exp-1", "weights")
	b := Artifact("exp-1", "weights")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
}

func TestEventDeterministic(t *testing.T) {
	a := Event("exp-1", "epoch_end", 100, 50, "trainer")
	b := Event("exp-1", "epoch_end", 100, 50, "trainer")
	if a != b {
		t.Fatalf("expected equal ids, got %q and %q", a, b)
	}
	if Event("exp-1", "epoch_end", 100, 51, "trainer") == a {
		t.Fatalf("expected differing id when wall_clock_nanos changes")
	}
}
