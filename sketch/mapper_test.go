package sketch

import "testing"

func TestMapper_Map(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OffsetXAdjust = 60
	cfg.OffsetYAdjust = -160

	layout := Layout{CanvasWidth: 500, CanvasHeight: 400, MarginPx: 20}
	mapper := NewMapper(layout, 1000, cfg)

	from, to := mapper.Map(Segment{Row: 50, StartCol: 10, EndCol: 30})

	if (from != Point{X: 90, Y: 190}) {
		t.Errorf("from = %+v, want {90 190}", from)
	}
	if (to != Point{X: 110, Y: 190}) {
		t.Errorf("to = %+v, want {110 190}", to)
	}
}

func TestMapper_NoOffsets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OffsetXAdjust = 0
	cfg.OffsetYAdjust = 0

	layout := Layout{CanvasWidth: 100, CanvasHeight: 100, MarginPx: 0}
	mapper := NewMapper(layout, 100, cfg)

	from, to := mapper.Map(Segment{Row: 7, StartCol: 3, EndCol: 9})

	if (from != Point{X: 3, Y: 7}) || (to != Point{X: 9, Y: 7}) {
		t.Errorf("got from=%+v to=%+v, want identity mapping", from, to)
	}
}

func TestMapper_VerticalCentering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OffsetXAdjust = 0
	cfg.OffsetYAdjust = 0

	layout := Layout{CanvasWidth: 100, CanvasHeight: 400, MarginPx: 50}
	mapper := NewMapper(layout, 1000, cfg)

	from, _ := mapper.Map(Segment{Row: 0, StartCol: 0, EndCol: 0})
	if from.Y != 300 {
		t.Errorf("first row maps to y=%d, want 300", from.Y)
	}
}
