package catalog

import (
	"math"
	"sort"
	"testing"
)

func TestLoadCatalog(t *testing.T) {
	species, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(species) == 0 {
		t.Fatal("empty catalog")
	}

	for _, sp := range species {
		if sp.Name == "" {
			t.Fatal("species with empty name")
		}
		if len(sp.Transitions) == 0 {
			t.Fatalf("species %q has no transitions", sp.Name)
		}
		if !sort.SliceIsSorted(sp.Transitions, func(i, j int) bool {
			return sp.Transitions[i].FreqGHz < sp.Transitions[j].FreqGHz
		}) {
			t.Fatalf("species %q transitions not sorted by frequency", sp.Name)
		}
		for _, tr := range sp.Transitions {
			if tr.FreqGHz <= 0 {
				t.Fatalf("species %q transition %q has frequency %v",
					sp.Name, tr.Name, tr.FreqGHz)
			}
		}
	}
}

func TestFindTransition(t *testing.T) {
	freq, ok := FindTransition("CO", "3 - 2")
	if !ok {
		t.Fatal("CO 3 - 2 not found")
	}
	if math.Abs(freq-345.796) > 1e-3 {
		t.Errorf("CO 3 - 2 frequency = %v GHz, want 345.796", freq)
	}

	if _, ok := FindTransition("CO", "99 - 98"); ok {
		t.Error("expected missing transition to report not found")
	}
	if _, ok := FindTransition("XYZ", "1 - 0"); ok {
		t.Error("expected missing species to report not found")
	}
}

func TestSpeciesSortKey(t *testing.T) {
	// Hyphenated variant markers are split off so ring and isotope
	// forms sort next to the plain molecule.
	main, extra := speciesSortKey("c-C3H2")
	if main != "C3H2" || extra != "c" {
		t.Errorf("speciesSortKey(c-C3H2) = %q, %q; want C3H2, c", main, extra)
	}
	main, extra = speciesSortKey("HC-13-CCN")
	if main != "HCCCN" || extra != "13" {
		t.Errorf("speciesSortKey(HC-13-CCN) = %q, %q; want HCCCN, 13", main, extra)
	}

	cases := []struct {
		a, b string
	}{
		{"C3H2", "c-C3H2"},
		{"CO", "CS"},
		{"13CO", "CO"},
	}
	for _, c := range cases {
		if !lessSpeciesName(c.a, c.b) {
			t.Errorf("expected %q to sort before %q", c.a, c.b)
		}
		if lessSpeciesName(c.b, c.a) {
			t.Errorf("expected %q not to sort before %q", c.b, c.a)
		}
	}
}
