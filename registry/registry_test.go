package registry

import (
	"math"
	"strings"
	"testing"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

func TestDefaultRegistry(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	infos := reg.Receivers()
	if len(infos) != 3 {
		t.Fatalf("got %d receivers, want 3", len(infos))
	}
	if infos[0].Name != "RxA3" || infos[1].Name != "HARP" || infos[2].Name != "RxWD" {
		t.Fatalf("unexpected display order: %v, %v, %v",
			infos[0].Name, infos[1].Name, infos[2].Name)
	}

	if _, err := reg.Receiver(model.ReceiverUnknown); err == nil {
		t.Fatal("expected error for unknown receiver")
	}
}

func TestReceiverTRxInterpolation(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	info, err := reg.Receiver(model.RxA3)
	if err != nil {
		t.Fatalf("Receiver: %v", err)
	}

	// Midway between the tabulated 255 and 256 GHz samples.
	if got := info.InterpolatedTRx(255.5); math.Abs(got-124.5) > 1e-9 {
		t.Errorf("T_rx(255.5) = %v, want 124.5", got)
	}

	// Outside the table the end values are held.
	first := info.TRx[0]
	last := info.TRx[len(info.TRx)-1]
	if got := info.InterpolatedTRx(first.FreqGHz - 50); got != first.TRxK {
		t.Errorf("T_rx below table = %v, want %v", got, first.TRxK)
	}
	if got := info.InterpolatedTRx(last.FreqGHz + 50); got != last.TRxK {
		t.Errorf("T_rx above table = %v, want %v", got, last.TRxK)
	}
}

func TestHARPFootprintDerived(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	info, err := reg.Receiver(model.HARP)
	if err != nil {
		t.Fatalf("Receiver: %v", err)
	}
	if info.Array == nil {
		t.Fatal("HARP should carry array geometry")
	}
	want := info.Array.SizeArcsec * math.Cos(info.Array.FAngleDeg*math.Pi/180)
	if math.Abs(info.Array.FootprintArcsec-want) > 1e-9 {
		t.Errorf("footprint = %v, want %v", info.Array.FootprintArcsec, want)
	}
	if math.Abs(info.Array.FootprintArcsec-116.41) > 0.05 {
		t.Errorf("footprint = %v, want ~116.41 arcsec", info.Array.FootprintArcsec)
	}
}

func TestOpacityInterpolation(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	grid := reg.Opacity()

	// On a table the value reproduces the table.
	if got := grid.InterpolatedOpacity(0.1, 225); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("tau(0.1, 225) = %v, want 0.1", got)
	}

	// Between tables the result lies between the neighbours.
	lo := grid.InterpolatedOpacity(0.065, 345)
	hi := grid.InterpolatedOpacity(0.1, 345)
	mid := grid.InterpolatedOpacity(0.08, 345)
	if !(lo < mid && mid < hi) {
		t.Errorf("tau(0.08) = %v not between tau(0.065) = %v and tau(0.1) = %v", mid, lo, hi)
	}

	// Beyond the last table it extrapolates upward.
	if beyond := grid.InterpolatedOpacity(0.3, 345); beyond <= grid.InterpolatedOpacity(0.25, 345) {
		t.Errorf("extrapolated tau(0.3) = %v should exceed tau(0.25)", beyond)
	}

	// Frequency clamps at the grid edges.
	if got := grid.InterpolatedOpacity(0.1, 100); got != grid.InterpolatedOpacity(0.1, 210) {
		t.Errorf("tau below grid = %v, want clamped to 210 GHz value", got)
	}
}

func TestNewValidatesInjectedTables(t *testing.T) {
	bad := map[model.Receiver]*model.ReceiverInfo{}
	for _, r := range model.AllReceivers() {
		bad[r] = &model.ReceiverInfo{
			Name:          r.String(),
			Band:          model.FrequencyBand{MinGHz: 200, MaxGHz: 300},
			NMix:          1,
			NPixels:       1,
			EtaTel:        0.9,
			IFBandwidthHz: 1e9,
			TRx:           []model.TRxPoint{{FreqGHz: 250, TRxK: 100}},
		}
	}
	bad[model.RxA3].EtaTel = 1.5

	_, err := New(Options{Receivers: bad})
	if err == nil || !strings.Contains(err.Error(), "eta_tel") {
		t.Fatalf("error = %v, want eta_tel validation failure", err)
	}
}

func TestReadReceiversRequiresAllReceivers(t *testing.T) {
	_, err := ReadReceivers(strings.NewReader(`{"RxA3": {"Name": "RxA3"}}`))
	if err == nil || !strings.Contains(err.Error(), "could not find receiver information") {
		t.Fatalf("error = %v, want missing-receiver failure", err)
	}
}

func TestReadOpacityRejectsUnsortedTables(t *testing.T) {
	grid, err := ReadOpacity(strings.NewReader(`[
		{"Tau225": 0.1, "Points": [[210, 0.1], [230, 0.1]]},
		{"Tau225": 0.05, "Points": [[210, 0.05], [230, 0.05]]}
	]`))
	if err != nil {
		t.Fatalf("ReadOpacity: %v", err)
	}
	if _, err := New(Options{Opacity: grid}); err == nil {
		t.Fatal("expected validation failure for unsorted opacity tables")
	}
}
