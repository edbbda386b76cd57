// SPDX-License-Identifier: MIT

package visual

import (
	"fmt"
	"image"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/shotqa/core"
	"github.com/katalvlaran/shotqa/frame"
	"github.com/katalvlaran/shotqa/gridgraph"
	"github.com/katalvlaran/shotqa/logging"
	"github.com/katalvlaran/shotqa/shot"
)

// Region labels fed to gridgraph; 0 is gridgraph.Background.
const (
	labelDisappearance = 1
	labelPhysics       = 2
)

// Detector finds regional anomalies. It is immutable after New and safe for
// concurrent use.
type Detector struct {
	o      options
	logger zerolog.Logger
}

// New validates opts and builds a Detector.
func New(opts ...Option) (*Detector, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Detector{o: o, logger: logging.WithComponent(o.logger, "visual")}, nil
}

// SeverityFor maps a metric/threshold ratio to a severity:
// below 1.5 low, below 2 medium, below 3 high, otherwise critical.
func SeverityFor(ratio float64) core.Severity {
	switch {
	case ratio < 1.5:
		return core.SeverityLow
	case ratio < 2:
		return core.SeverityMedium
	case ratio < 3:
		return core.SeverityHigh
	default:
		return core.SeverityCritical
	}
}

// region is the measurement of one grid cell for one frame pair.
type region struct {
	rect     image.Rectangle
	delta    float64 // mean |b−a|
	stdA     float64
	stdB     float64
	residual float64
	label    int
}

// Detect scans frames with timestamps starting at 0.
func (d *Detector) Detect(frames []*frame.Frame) ([]core.Anomaly, error) {
	return d.DetectAt(frames, 0)
}

// DetectShot scans a shot's frames using the shot timestamp as base.
func (d *Detector) DetectShot(s *shot.Shot) ([]core.Anomaly, error) {
	if s == nil {
		return nil, core.Invalid("shot", shot.ErrNilShot)
	}
	return d.DetectAt(s.Frames(), s.Timestamp())
}

// DetectAt scans frames; anomaly timestamps are base + frame_number/fps.
// base must be finite and >= 0.
func (d *Detector) DetectAt(frames []*frame.Frame, base float64) ([]core.Anomaly, error) {
	planes, err := frame.Lumas("frames", frames)
	if err != nil {
		return nil, err
	}
	return d.DetectPlanes(planes, base)
}

// DetectPlanes scans precomputed luminance planes.
// Stage 1 (Validate): base finite and >= 0, no nil planes, one shape for all.
// Stage 2 (Measure): per pair, per region delta and texture.
// Stage 3 (Merge): label flagged regions and emit one anomaly per component.
func (d *Detector) DetectPlanes(planes []*frame.Plane, base float64) ([]core.Anomaly, error) {
	if !core.IsFinite(base) || base < 0 {
		return nil, core.Invalidf("base", "%w: %v", shot.ErrBadTimestamp, base)
	}
	if err := frame.ValidatePlanes("frames", planes); err != nil {
		return nil, err
	}
	anomalies := []core.Anomaly{}
	if len(planes) < 2 || planes[0].Len() == 0 {
		return anomalies, nil
	}

	rows, cols := min(d.o.rows, planes[0].Height()), min(d.o.cols, planes[0].Width())
	for n := 1; n < len(planes); n++ {
		regions := d.measure(planes[n-1], planes[n], rows, cols)
		found, err := d.merge(regions, rows, cols, n, base)
		if err != nil {
			return nil, err
		}
		anomalies = append(anomalies, found...)
	}

	return anomalies, nil
}

// measure fills and labels every region of the rows×cols grid.
func (d *Detector) measure(a, b *frame.Plane, rows, cols int) []region {
	w, h := a.Width(), a.Height()
	regions := make([]region, 0, rows*cols)
	deltas := make([]float64, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := image.Rect(c*w/cols, r*h/rows, (c+1)*w/cols, (r+1)*h/rows)
			_, stdA := a.RegionStats(rect)
			_, stdB := b.RegionStats(rect)
			delta := frame.RegionMeanAbsDiff(a, b, rect)
			regions = append(regions, region{rect: rect, delta: delta, stdA: stdA, stdB: stdB})
			deltas = append(deltas, delta)
		}
	}
	sort.Float64s(deltas)
	global := stat.Quantile(0.5, stat.Empirical, deltas, nil)

	flagged := 0
	for i := range regions {
		rg := &regions[i]
		rg.residual = rg.delta - global
		if rg.residual < d.o.regionThreshold {
			continue
		}
		flagged++
		if rg.stdA >= d.o.minTexture && rg.stdB <= d.o.disappearanceRatio*rg.stdA {
			rg.label = labelDisappearance
		} else {
			rg.label = labelPhysics
		}
	}
	if float64(flagged) > d.o.maxFlaggedFraction*float64(len(regions)) {
		d.logger.Debug().Int("flagged", flagged).Int("regions", len(regions)).Msg("global change, regions ignored")
		for i := range regions {
			regions[i].label = gridgraph.Background
		}
	}

	return regions
}

// merge turns labelled regions into anomalies, one per connected component.
func (d *Detector) merge(regions []region, rows, cols, n int, base float64) ([]core.Anomaly, error) {
	labels := make([][]int, rows)
	flagged := false
	for r := range labels {
		labels[r] = make([]int, cols)
		for c := range labels[r] {
			labels[r][c] = regions[r*cols+c].label
			flagged = flagged || labels[r][c] != gridgraph.Background
		}
	}
	if !flagged {
		return nil, nil
	}
	gg, err := gridgraph.NewGridGraph(labels, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("visual: region grid: %w", err)
	}

	var out []core.Anomaly
	for _, comp := range gg.ConnectedComponents() {
		metric := 0.0
		var box image.Rectangle
		for i, idx := range comp.Cells {
			rg := regions[idx]
			metric = max(metric, rg.residual)
			if i == 0 {
				box = rg.rect
			} else {
				box = box.Union(rg.rect)
			}
		}
		typ := core.AnomalyPhysicsViolation
		what := "region changed beyond global motion"
		if comp.Label == labelDisappearance {
			typ = core.AnomalyObjectDisappearance
			what = "textured region went flat"
		}
		sev := SeverityFor(metric / d.o.regionThreshold)
		out = append(out, core.Anomaly{
			Type:     typ,
			Severity: sev,
			Description: fmt.Sprintf("%s between frames %d and %d: %d region(s) at %v, residual %.2f",
				what, n-1, n, len(comp.Cells), box, metric),
			Timestamp:      base + float64(n)/d.o.fps,
			FrameNumber:    n,
			MetricValue:    metric,
			ThresholdValue: d.o.regionThreshold,
		})
		d.logger.Debug().
			Int("frame", n).
			Str("type", typ.String()).
			Str("severity", sev.String()).
			Float64("residual", metric).
			Int("regions", len(comp.Cells)).
			Msg("visual anomaly")
	}

	return out, nil
}
