// Package termstructure provides Black volatility curves and surfaces.
package termstructure

// VolCurve is a strike-independent Black volatility term structure.
type VolCurve interface {
	// Vol returns the Black volatility for a time to expiry in years.
	Vol(t float64) float64
}

// VolSurface is a strike-dependent Black volatility term structure.
type VolSurface interface {
	// Vol returns the Black volatility for a time to expiry and strike.
	Vol(t, strike float64) float64
	// AtmVol returns the at-the-money volatility for a time to expiry.
	AtmVol(t float64) float64
}

// FlatCurve is a constant volatility curve.
type FlatCurve float64

// Vol implements VolCurve.
func (c FlatCurve) Vol(float64) float64 { return float64(c) }

// InterpolatedCurve linearly interpolates volatilities between time pillars
// with flat extrapolation beyond the first and last pillar. Pillars must be
// strictly increasing.
type InterpolatedCurve struct {
	times []float64
	vols  []float64
}

// NewInterpolatedCurve creates a curve from parallel pillar slices.
func NewInterpolatedCurve(times, vols []float64) *InterpolatedCurve {
	return &InterpolatedCurve{times: times, vols: vols}
}

// Vol implements VolCurve.
func (c *InterpolatedCurve) Vol(t float64) float64 {
	n := len(c.times)
	if n == 0 {
		return 0
	}
	if t <= c.times[0] {
		return c.vols[0]
	}
	if t >= c.times[n-1] {
		return c.vols[n-1]
	}
	for i := 1; i < n; i++ {
		if t <= c.times[i] {
			w := (t - c.times[i-1]) / (c.times[i] - c.times[i-1])
			return c.vols[i-1] + w*(c.vols[i]-c.vols[i-1])
		}
	}
	return c.vols[n-1]
}

// FlatSurface wraps a curve as a strike-independent surface.
type FlatSurface struct {
	Curve VolCurve
}

// Vol implements VolSurface.
func (s FlatSurface) Vol(t, _ float64) float64 { return s.Curve.Vol(t) }

// AtmVol implements VolSurface.
func (s FlatSurface) AtmVol(t float64) float64 { return s.Curve.Vol(t) }
