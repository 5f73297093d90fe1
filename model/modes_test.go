package model

import (
	"encoding/json"
	"testing"
)

func TestParseMapMode(t *testing.T) {
	for _, c := range []struct {
		name string
		want MapMode
	}{
		{"grid", MapGrid},
		{"jiggle", MapJiggle},
		{"raster", MapRaster},
	} {
		got, err := ParseMapMode(c.name)
		if err != nil || got != c.want {
			t.Errorf("ParseMapMode(%q) = %v, %v; want %v", c.name, got, err, c.want)
		}
		if got.String() != c.name {
			t.Errorf("String() = %q, want %q", got.String(), c.name)
		}
	}
	if _, err := ParseMapMode("scan"); err == nil {
		t.Error("expected error for unknown map mode")
	}
}

func TestParseSwitchMode(t *testing.T) {
	for _, c := range []struct {
		name string
		want SwitchMode
	}{
		{"bmsw", BeamSwitch},
		{"pssw", PositionSwitch},
		{"frsw", FrequencySwitch},
	} {
		got, err := ParseSwitchMode(c.name)
		if err != nil || got != c.want {
			t.Errorf("ParseSwitchMode(%q) = %v, %v; want %v", c.name, got, err, c.want)
		}
	}
	if _, err := ParseSwitchMode("chop"); err == nil {
		t.Error("expected error for unknown switch mode")
	}
}

func TestSidebandValid(t *testing.T) {
	for _, s := range []Sideband{SidebandNone, SidebandLower, SidebandUpper} {
		if !s.Valid() {
			t.Errorf("Sideband(%q).Valid() = false, want true", s)
		}
	}
	if Sideband("xsb").Valid() {
		t.Error("Sideband(xsb).Valid() = true, want false")
	}
}

func TestRequestJSONUsesNames(t *testing.T) {
	req := Request{
		Receiver:   HARP,
		MapMode:    MapJiggle,
		SwitchMode: BeamSwitch,
	}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Request
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Receiver != HARP || decoded.MapMode != MapJiggle || decoded.SwitchMode != BeamSwitch {
		t.Fatalf("round trip = %+v", decoded)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["Receiver"] != "HARP" || raw["MapMode"] != "jiggle" || raw["SwitchMode"] != "bmsw" {
		t.Fatalf("wire form uses %v / %v / %v, want names",
			raw["Receiver"], raw["MapMode"], raw["SwitchMode"])
	}
}
