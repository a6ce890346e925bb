package termstructure

// SmileSpreads is a time-independent smile given as vol spreads by strike,
// linearly interpolated with flat extrapolation. Paired with an ATM curve in
// a ConstantSpreadSurface it contributes only its shape: the spread at the
// ATM strike is subtracted back out.
type SmileSpreads struct {
	curve     *InterpolatedCurve
	atmStrike float64
}

// NewSmileSpreads creates a smile from parallel strike/spread slices and the
// ATM strike. Strikes must be strictly increasing.
func NewSmileSpreads(strikes, spreads []float64, atmStrike float64) *SmileSpreads {
	return &SmileSpreads{curve: NewInterpolatedCurve(strikes, spreads), atmStrike: atmStrike}
}

// Vol implements VolSurface.
func (s *SmileSpreads) Vol(_, strike float64) float64 { return s.curve.Vol(strike) }

// AtmVol implements VolSurface.
func (s *SmileSpreads) AtmVol(float64) float64 { return s.curve.Vol(s.atmStrike) }
