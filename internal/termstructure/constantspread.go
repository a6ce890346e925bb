package termstructure

// ConstantSpreadSurface combines a strike-independent ATM curve with the
// strike-dependent spreads of a surface:
//
//	vol(t, k) = atm(t) + surface(t, k) - surfaceATM(t)
//
// The ATM curve carries the level, the surface only contributes its smile.
// The given ATM structure should be strike independent; this is not checked.
type ConstantSpreadSurface struct {
	atm     VolCurve
	surface VolSurface
}

// NewConstantSpreadSurface combines an ATM curve and a smile surface.
func NewConstantSpreadSurface(atm VolCurve, surface VolSurface) *ConstantSpreadSurface {
	return &ConstantSpreadSurface{atm: atm, surface: surface}
}

// Vol implements VolSurface.
func (s *ConstantSpreadSurface) Vol(t, strike float64) float64 {
	return s.atm.Vol(t) + s.surface.Vol(t, strike) - s.surface.AtmVol(t)
}

// AtmVol implements VolSurface.
func (s *ConstantSpreadSurface) AtmVol(t float64) float64 {
	return s.atm.Vol(t)
}
