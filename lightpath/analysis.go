package lightpath

import (
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Reflectivity is the loss of one bounce as a function of incidence angle.
type Reflectivity struct {
	lossFunc lin.Function
}

// NewReflectivity builds a reflectivity curve from a map of incidence angle in
// degrees (0 is head-on, 90 is grazing) to loss in dB. Loss should be zero or
// negative. Angles between the given points are linearly interpolated and
// angles outside them take the nearest end value.
func NewReflectivity(lossByAngle map[float64]float64) Reflectivity {
	x := make([]float64, 0, len(lossByAngle))
	for angle := range lossByAngle {
		x = append(x, angle)
	}
	sort.Float64s(x)
	y := make([]float64, len(x))
	for i, angle := range x {
		y[i] = lossByAngle[angle]
	}
	return Reflectivity{lossFunc: lin.Function{X: x, Y: y}}
}

// LossDB returns the loss of a bounce at the given incidence angle in degrees.
func (r Reflectivity) LossDB(angle float64) float64 {
	x := r.lossFunc.X
	switch {
	case len(x) == 0:
		return 0
	case angle <= x[0]:
		return r.lossFunc.Y[0]
	case angle >= x[len(x)-1]:
		return r.lossFunc.Y[len(x)-1]
	}
	return r.lossFunc.At(angle)
}

// Bounce describes one reflection along a beam.
type Bounce struct {
	Position Point
	Mirror   int
	// Angle between the incoming ray and the mirror normal, in degrees
	IncidenceDeg float64
	LossDB       float64
}

// BeamReport summarises a found path for presentation.
type BeamReport struct {
	// Total travelled distance from source to target
	Length  float64
	Legs    []float64
	Bounces []Bounce
	// Sum of all bounce losses, relative to the source
	GainDB float64
}

// Analyze measures the path in res against the mirrors it was searched with.
// An unreachable result gives an empty report.
func Analyze(res Result, mirrors []Mirror, r Reflectivity) BeamReport {
	var report BeamReport
	if !res.Reachable || len(res.Path) < 2 {
		return report
	}
	for i := 0; i < len(res.Path)-1; i++ {
		report.Legs = append(report.Legs, r2.Norm(r2.Sub(res.Path[i+1], res.Path[i])))
	}
	report.Length = floats.Sum(report.Legs)

	losses := make([]float64, 0, len(res.Mirrors))
	for i, m := range res.Mirrors {
		hit := res.Path[i+1]
		angle := 0.0
		if inc, ok := unit(r2.Sub(hit, res.Path[i])); ok && m < len(mirrors) {
			cos := math.Abs(r2.Dot(inc, mirrors[m].Normal()))
			angle = math.Acos(math.Min(cos, 1)) * 180 / math.Pi
		}
		loss := r.LossDB(angle)
		losses = append(losses, loss)
		report.Bounces = append(report.Bounces, Bounce{
			Position:     hit,
			Mirror:       m,
			IncidenceDeg: angle,
			LossDB:       loss,
		})
	}
	report.GainDB = floats.Sum(losses)
	return report
}

func fromDB(gainDB float64) float64 {
	return math.Pow(10, gainDB/10)
}

// LinearGain converts the report's total gain to a power ratio in (0, 1].
func (b BeamReport) LinearGain() float64 {
	return fromDB(b.GainDB)
}
