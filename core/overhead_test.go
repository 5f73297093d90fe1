package core

import (
	"errors"
	"testing"

	"github.com/eaobservatory/jcmt-itc-heterodyne/model"
)

func TestModeOverheadGrid(t *testing.T) {
	info := testReceiver(t, model.RxA3)

	// Chopped grids share one off across the whole map.
	ov, err := modeOverhead(info, &model.Request{
		MapMode: model.MapGrid, SwitchMode: model.BeamSwitch, NPoints: 9,
	})
	if err != nil {
		t.Fatalf("bmsw grid: %v", err)
	}
	if ov.points != 9 || ov.sharedOffs != 9 || ov.passes != 1 {
		t.Fatalf("bmsw grid overhead = %+v", ov)
	}

	// Position-switched grids take an off per point.
	ov, err = modeOverhead(info, &model.Request{
		MapMode: model.MapGrid, SwitchMode: model.PositionSwitch, NPoints: 9,
	})
	if err != nil {
		t.Fatalf("pssw grid: %v", err)
	}
	if ov.sharedOffs != 1 {
		t.Fatalf("pssw grid sharedOffs = %d, want 1", ov.sharedOffs)
	}

	// Separate offs double the passes and forbid sharing.
	ov, err = modeOverhead(info, &model.Request{
		MapMode: model.MapGrid, SwitchMode: model.BeamSwitch, NPoints: 9,
		SeparateOffs: true,
	})
	if err != nil {
		t.Fatalf("separate offs grid: %v", err)
	}
	if ov.sharedOffs != 1 || ov.passes != 2 {
		t.Fatalf("separate offs grid overhead = %+v", ov)
	}
}

func TestModeOverheadJiggle(t *testing.T) {
	info := testReceiver(t, model.HARP)

	ov, err := modeOverhead(info, &model.Request{
		MapMode: model.MapJiggle, SwitchMode: model.BeamSwitch, NPoints: 16,
	})
	if err != nil {
		t.Fatalf("jiggle: %v", err)
	}
	if ov.points != 16 || ov.sharedOffs != 16 {
		t.Fatalf("jiggle overhead = %+v", ov)
	}

	// Array receivers only offer fixed jiggle patterns.
	_, err = modeOverhead(info, &model.Request{
		MapMode: model.MapJiggle, SwitchMode: model.BeamSwitch, NPoints: 7,
	})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("7-point HARP jiggle error = %v, want ErrConfiguration", err)
	}

	// Single-beam receivers take any point count.
	if _, err := modeOverhead(testReceiver(t, model.RxA3), &model.Request{
		MapMode: model.MapJiggle, SwitchMode: model.PositionSwitch, NPoints: 7,
	}); err != nil {
		t.Fatalf("7-point RxA3 jiggle: %v", err)
	}
}

func TestModeOverheadRaster(t *testing.T) {
	info := testReceiver(t, model.HARP)

	req := model.Request{
		MapMode: model.MapRaster, SwitchMode: model.PositionSwitch,
		DimX: 300, DimY: 300, Dx: 7.5, Dy: 120,
	}
	ov, err := modeOverhead(info, &req)
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	// 40 points per row, 3 rows, one shared off per row.
	if ov.points != 120 || ov.sharedOffs != 40 {
		t.Fatalf("raster overhead = %+v", ov)
	}
	if ov.rowOverlap != 1 {
		t.Fatalf("full-footprint spacing rowOverlap = %d, want 1", ov.rowOverlap)
	}

	// Nyquist row spacing oversamples: successive rows of the array
	// revisit the same sky.
	req.Dy = 7.5
	ov, err = modeOverhead(info, &req)
	if err != nil {
		t.Fatalf("oversampled raster: %v", err)
	}
	// floor(116.4 / 7.5) = 15, within the 16-pixel cap.
	if ov.rowOverlap != 15 {
		t.Fatalf("oversampled rowOverlap = %d, want 15", ov.rowOverlap)
	}

	req.BasketWeave = true
	ov, err = modeOverhead(info, &req)
	if err != nil {
		t.Fatalf("basket weave: %v", err)
	}
	if ov.passes != 2 {
		t.Fatalf("basket weave passes = %d, want 2", ov.passes)
	}
}

func TestModeOverheadRejections(t *testing.T) {
	harp := testReceiver(t, model.HARP)
	rxa3 := testReceiver(t, model.RxA3)

	cases := []struct {
		name string
		info *model.ReceiverInfo
		req  model.Request
		want error
	}{
		{
			name: "raster cannot chop",
			info: harp,
			req: model.Request{MapMode: model.MapRaster, SwitchMode: model.BeamSwitch,
				DimX: 100, DimY: 100, Dx: 10, Dy: 10},
			want: ErrConfiguration,
		},
		{
			name: "raster cannot frequency switch",
			info: rxa3,
			req: model.Request{MapMode: model.MapRaster, SwitchMode: model.FrequencySwitch,
				DimX: 100, DimY: 100, Dx: 10, Dy: 10},
			want: ErrConfiguration,
		},
		{
			name: "receiver without frequency switching",
			info: harp,
			req:  model.Request{MapMode: model.MapGrid, SwitchMode: model.FrequencySwitch, NPoints: 1},
			want: ErrUnsupportedMode,
		},
		{
			name: "basket weave needs a raster",
			info: harp,
			req: model.Request{MapMode: model.MapGrid, SwitchMode: model.BeamSwitch,
				NPoints: 1, BasketWeave: true},
			want: ErrConfiguration,
		},
		{
			name: "separate offs exclude rasters",
			info: harp,
			req: model.Request{MapMode: model.MapRaster, SwitchMode: model.PositionSwitch,
				DimX: 100, DimY: 100, Dx: 10, Dy: 10, SeparateOffs: true},
			want: ErrConfiguration,
		},
		{
			name: "grid needs points",
			info: rxa3,
			req:  model.Request{MapMode: model.MapGrid, SwitchMode: model.PositionSwitch},
			want: ErrConfiguration,
		},
		{
			name: "raster needs geometry",
			info: harp,
			req: model.Request{MapMode: model.MapRaster, SwitchMode: model.PositionSwitch,
				DimX: 100, DimY: 100, Dx: 10},
			want: ErrConfiguration,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := modeOverhead(c.info, &c.req); !errors.Is(err, c.want) {
				t.Fatalf("error = %v, want %v", err, c.want)
			}
		})
	}
}

func TestOnSourceFraction(t *testing.T) {
	if got := onSourceFraction(model.BeamSwitch); got != 0.5 {
		t.Errorf("bmsw fraction = %v, want 0.5", got)
	}
	if got := onSourceFraction(model.PositionSwitch); got != 0.45 {
		t.Errorf("pssw fraction = %v, want 0.45", got)
	}
	if got := onSourceFraction(model.FrequencySwitch); got != 1.0 {
		t.Errorf("frsw fraction = %v, want 1", got)
	}
}
