package pricing

// compositeLeg pairs a priceable leg with its multiplier.
type compositeLeg struct {
	leg  Priceable
	mult float64
}

// Composite is an ordered linear combination of priceable legs with signed
// multipliers. Its present value is the signed sum of leg present values.
// A composite is owned by one pricing call; it is never shared or cached.
type Composite struct {
	legs []compositeLeg
}

// NewComposite creates an empty composite.
func NewComposite() *Composite {
	return &Composite{}
}

// Add appends a leg with multiplier +1.
func (c *Composite) Add(leg Priceable) {
	c.AddWithMultiplier(leg, 1)
}

// AddWithMultiplier appends a leg with an explicit multiplier.
func (c *Composite) AddWithMultiplier(leg Priceable, mult float64) {
	c.legs = append(c.legs, compositeLeg{leg: leg, mult: mult})
}

// Len returns the number of legs.
func (c *Composite) Len() int {
	return len(c.legs)
}

// PresentValue returns the signed sum of leg present values. The first leg
// error aborts the sum; no partial value is returned alongside an error.
func (c *Composite) PresentValue() (float64, error) {
	var total float64
	for _, cl := range c.legs {
		pv, err := cl.leg.PresentValue()
		if err != nil {
			return 0, err
		}
		total += cl.mult * pv
	}
	return total, nil
}
