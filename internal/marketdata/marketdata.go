// Package marketdata loads flat-file market snapshots for the pricer.
package marketdata

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
	"fxbarrier-pricer/internal/termstructure"
)

// PairData holds the market state for one currency pair as loaded from the
// snapshot file. Rates and vols are continuously compounded decimals.
// AtmPillars and SmileSpreads are optional point lists in "x:y;x:y" form:
// time-in-years to ATM vol, and strike to vol spread over ATM. When empty the
// surface is flat at AtmVol.
type PairData struct {
	Pair         string  `csv:"pair"`
	Spot         float64 `csv:"spot"`
	DomesticRate float64 `csv:"domestic_rate"`
	ForeignRate  float64 `csv:"foreign_rate"`
	AtmVol       float64 `csv:"atm_vol"`
	AtmPillars   string  `csv:"atm_pillars"`
	SmileSpreads string  `csv:"smile_spreads"`
}

// CurrencyPair parses the pair column (BOUGHT/SOLD notation).
func (d PairData) CurrencyPair() (models.CurrencyPair, error) {
	parts := strings.Split(d.Pair, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.CurrencyPair{}, errors.NewValidationError("pair", d.Pair, "expected BOUGHT/SOLD", nil)
	}
	return models.CurrencyPair{Bought: parts[0], Sold: parts[1]}, nil
}

// VolSurface builds the Black vol surface for the pair: an interpolated ATM
// curve over the pillars (flat at AtmVol when none are given), wrapped with
// the smile spreads when present. The spot is the ATM strike.
func (d PairData) VolSurface() (termstructure.VolSurface, error) {
	var atm termstructure.VolCurve = termstructure.FlatCurve(d.AtmVol)
	if d.AtmPillars != "" {
		times, vols, err := parsePoints("atm_pillars", d.AtmPillars)
		if err != nil {
			return nil, err
		}
		atm = termstructure.NewInterpolatedCurve(times, vols)
	}
	if d.SmileSpreads == "" {
		return termstructure.FlatSurface{Curve: atm}, nil
	}
	strikes, spreads, err := parsePoints("smile_spreads", d.SmileSpreads)
	if err != nil {
		return nil, err
	}
	return termstructure.NewConstantSpreadSurface(atm, termstructure.NewSmileSpreads(strikes, spreads, d.Spot)), nil
}

// parsePoints parses a "x:y;x:y" point list with strictly increasing x.
func parsePoints(field, s string) ([]float64, []float64, error) {
	var xs, ys []float64
	for _, part := range strings.Split(s, ";") {
		pieces := strings.Split(part, ":")
		if len(pieces) != 2 {
			return nil, nil, errors.NewValidationError(field, part, "expected x:y point", nil)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(pieces[0]), 64)
		if err != nil {
			return nil, nil, errors.NewValidationError(field, part, "invalid point coordinate", err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(pieces[1]), 64)
		if err != nil {
			return nil, nil, errors.NewValidationError(field, part, "invalid point value", err)
		}
		if len(xs) > 0 && x <= xs[len(xs)-1] {
			return nil, nil, errors.NewValidationError(field, s, "points must be strictly increasing", nil)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// Snapshot is a loaded market snapshot keyed by currency pair.
type Snapshot struct {
	AsOf  time.Time
	pairs map[models.CurrencyPair]PairData
}

// Load reads a CSV snapshot file. Expected columns:
// pair,spot,domestic_rate,foreign_rate,atm_vol.
func Load(path string, asOf time.Time) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open market data file %s", path)
	}
	defer f.Close()

	var rows []PairData
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, errors.Wrapf(err, "failed to parse market data file %s", path)
	}

	snap := &Snapshot{AsOf: asOf, pairs: make(map[models.CurrencyPair]PairData, len(rows))}
	for _, row := range rows {
		pair, err := row.CurrencyPair()
		if err != nil {
			return nil, err
		}
		if _, err := row.VolSurface(); err != nil {
			return nil, err
		}
		snap.pairs[pair] = row
	}
	return snap, nil
}

// Pair returns the data for a currency pair.
func (s *Snapshot) Pair(pair models.CurrencyPair) (PairData, error) {
	d, ok := s.pairs[pair]
	if !ok {
		return PairData{}, errors.Wrapf(errors.ErrMarketDataNotFound, "pair %s", pair)
	}
	return d, nil
}

// Pairs returns all loaded currency pairs.
func (s *Snapshot) Pairs() []models.CurrencyPair {
	out := make([]models.CurrencyPair, 0, len(s.pairs))
	for p := range s.pairs {
		out = append(out, p)
	}
	return out
}
