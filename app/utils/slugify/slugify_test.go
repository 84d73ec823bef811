package slugify

import (
	"reflect"
	"testing"
)

func TestMakeNormalizes(t *testing.T) {
	cases := map[string]string{
		"Café Deluxe!!":    "cafe-deluxe",
		"  Running Shoes ": "running-shoes",
		"A--B":             "a-b",
	}
	for in, want := range cases {
		if got := Make(in); got != want {
			t.Fatalf("Make(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAssignUniqueBatch(t *testing.T) {
	seen := Counter{}
	var got []string
	for _, name := range []string{"Shoes", "Shoes", "Shoes"} {
		got = append(got, AssignUnique(name, seen))
	}
	want := []string{"shoes", "shoes-2", "shoes-3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("batch slugs = %v, want %v", got, want)
	}
}

func TestAssignUniqueDistinctBases(t *testing.T) {
	seen := Counter{}
	if got := AssignUnique("Shoes", seen); got != "shoes" {
		t.Fatalf("first shoes slug = %q", got)
	}
	if got := AssignUnique("Boots", seen); got != "boots" {
		t.Fatalf("first boots slug = %q", got)
	}
	if got := AssignUnique("Shoes", seen); got != "shoes-2" {
		t.Fatalf("second shoes slug = %q", got)
	}
}

func TestSeedCounterResumesSequence(t *testing.T) {
	seen := SeedCounter("shoes", []string{"shoes", "shoes-2", "sandals"})
	if got := AssignUnique("Shoes", seen); got != "shoes-3" {
		t.Fatalf("resumed slug = %q, want shoes-3", got)
	}
}

func TestSeedCounterSkipsSurvivingSuffixes(t *testing.T) {
	// The bare base row was deleted but a suffixed form survives; the
	// next assignment must not collide with it.
	seen := SeedCounter("shoes", []string{"shoes-2"})
	if got := AssignUnique("Shoes", seen); got != "shoes-3" {
		t.Fatalf("slug = %q, want shoes-3 past the surviving shoes-2", got)
	}
}

func TestSeedCounterIgnoresUnrelated(t *testing.T) {
	seen := SeedCounter("shoes", []string{"shoes-red", "sandals"})
	if got := AssignUnique("Shoes", seen); got != "shoes" {
		t.Fatalf("slug with no prior matches = %q, want shoes", got)
	}
}
