// Package catalog provides the spectral line catalog used to pick
// observing frequencies: a fixed set of species and transitions with
// rest frequencies in GHz, loaded once from an embedded XML file.
package catalog

import (
	"embed"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

//go:embed data/line_catalog.xml
var dataFiles embed.FS

// Transition is one spectral line of a species.
type Transition struct {
	Name    string  `json:"Name"`
	FreqGHz float64 `json:"FreqGHz"`
}

// Species is a molecule with its catalogued transitions, sorted by
// frequency.
type Species struct {
	Name        string       `json:"Name"`
	Transitions []Transition `json:"Transitions"`
}

var (
	loadOnce    sync.Once
	loadedCat   []Species
	loadedError error
)

// Load returns the line catalog, reading the embedded XML file on
// first use. The returned slice is shared and must not be modified.
func Load() ([]Species, error) {
	loadOnce.Do(func() {
		data, err := dataFiles.ReadFile("data/line_catalog.xml")
		if err != nil {
			loadedError = fmt.Errorf("read embedded line catalog: %w", err)
			return
		}
		loadedCat, loadedError = parse(data)
	})
	return loadedCat, loadedError
}

// FindTransition looks up the rest frequency (GHz) of a transition.
func FindTransition(species, transition string) (float64, bool) {
	cat, err := Load()
	if err != nil {
		return 0, false
	}
	for _, s := range cat {
		if s.Name != species {
			continue
		}
		for _, t := range s.Transitions {
			if t.Name == transition {
				return t.FreqGHz, true
			}
		}
	}
	return 0, false
}

type xmlCatalog struct {
	Species []xmlSpecies `xml:"species"`
}

type xmlSpecies struct {
	Name        string          `xml:"name,attr"`
	Transitions []xmlTransition `xml:"transition"`
}

type xmlTransition struct {
	Name string `xml:"name,attr"`
	// Frequency is catalogued in MHz.
	Frequency float64 `xml:"frequency,attr"`
}

func parse(data []byte) ([]Species, error) {
	var doc xmlCatalog
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode line catalog: %w", err)
	}

	catalog := make([]Species, 0, len(doc.Species))
	for _, s := range doc.Species {
		// Skip species for which no transitions are catalogued.
		if len(s.Transitions) == 0 {
			continue
		}
		species := Species{
			Name:        s.Name,
			Transitions: make([]Transition, 0, len(s.Transitions)),
		}
		for _, t := range s.Transitions {
			species.Transitions = append(species.Transitions, Transition{
				Name:    t.Name,
				FreqGHz: t.Frequency / 1000.0,
			})
		}
		sort.SliceStable(species.Transitions, func(i, j int) bool {
			return species.Transitions[i].FreqGHz < species.Transitions[j].FreqGHz
		})
		catalog = append(catalog, species)
	}

	sort.SliceStable(catalog, func(i, j int) bool {
		return lessSpeciesName(catalog[i].Name, catalog[j].Name)
	})
	return catalog, nil
}

var plainPartPattern = regexp.MustCompile(`^(\d+|[a-z])$`)

// speciesSortKey strips hyphenated isotope counts and lowercase
// variant markers from a species name so that those variants sort
// next to their parent molecule.
func speciesSortKey(name string) (main, extra string) {
	var mainParts, extraParts []string
	for _, part := range strings.Split(name, "-") {
		if plainPartPattern.MatchString(part) {
			extraParts = append(extraParts, part)
		} else {
			mainParts = append(mainParts, part)
		}
	}
	return strings.Join(mainParts, ""), strings.Join(extraParts, "")
}

func lessSpeciesName(a, b string) bool {
	aMain, aExtra := speciesSortKey(a)
	bMain, bExtra := speciesSortKey(b)
	if aMain != bMain {
		return aMain < bMain
	}
	if aExtra != bExtra {
		return aExtra < bExtra
	}
	return a < b
}
