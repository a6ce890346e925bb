package pricing

import (
	"math"
	"testing"
	"time"

	"fxbarrier-pricer/internal/errors"
	"fxbarrier-pricer/internal/models"
)

var (
	valuation = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry    = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	eurUsd    = models.CurrencyPair{Bought: "EUR", Sold: "USD"}
)

// stubPricer records requested legs and returns fixed marks so expected
// composite values can be computed by hand: vanillas mark at their strike,
// digitals at their cash amount, cash legs at their amount.
type stubPricer struct {
	vanillas []stubVanilla
	digitals []stubDigital
}

type stubVanilla struct {
	strike     float64
	optionType models.OptionType
}

type stubDigital struct {
	trigger    float64
	cash       float64
	optionType models.OptionType
}

func (s *stubPricer) PriceVanilla(_ time.Time, strike float64, optionType models.OptionType) (float64, error) {
	s.vanillas = append(s.vanillas, stubVanilla{strike, optionType})
	return strike, nil
}

func (s *stubPricer) PriceDigital(_ time.Time, trigger, cash float64, optionType models.OptionType) (float64, error) {
	s.digitals = append(s.digitals, stubDigital{trigger, cash, optionType})
	return cash, nil
}

type stubCashPricer struct{}

func (stubCashPricer) PriceCash(amount float64, _ time.Time) (float64, error) {
	return amount, nil
}

func stubRegistry(p *stubPricer) *Registry {
	r := NewRegistry()
	r.RegisterVanilla(eurUsd, p)
	r.RegisterDigital(eurUsd, p)
	r.RegisterCash("USD", stubCashPricer{})
	r.RegisterCash("EUR", stubCashPricer{})
	return r
}

func barrierTrade(optionType models.OptionType, barrierType models.BarrierType, level, rebate float64, longShort models.PositionType) models.BarrierTrade {
	return models.BarrierTrade{
		ID: "T-1",
		Option: models.OptionSpec{
			Type:          optionType,
			Style:         models.StyleEuropean,
			ExerciseDates: []time.Time{expiry},
			LongShort:     longShort,
		},
		Barrier: models.BarrierSpec{
			Levels: []float64{level},
			Type:   barrierType,
			Style:  models.StyleEuropean,
			Rebate: rebate,
		},
		Amounts: models.FxLegAmounts{
			BoughtCurrency: "EUR",
			SoldCurrency:   "USD",
			BoughtAmount:   100,
			SoldAmount:     110,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestPrice_BoundaryScenario prices the reference scenario: long call,
// up-and-out, K=1.10, B=1.20, rebate 5.
func TestPrice_BoundaryScenario(t *testing.T) {
	stub := &stubPricer{}
	engine := NewEngine(stubRegistry(stub))

	trade := barrierTrade(models.OptionCall, models.BarrierUpOut, 1.20, 5, models.PositionLong)
	outputs, err := engine.Price(trade)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}

	// Rebate digital (call-type, cash 5) then vanilla K, vanilla B, main digital.
	if len(stub.vanillas) != 2 || len(stub.digitals) != 2 {
		t.Fatalf("got %d vanillas, %d digitals; want 2 and 2", len(stub.vanillas), len(stub.digitals))
	}
	if stub.vanillas[0] != (stubVanilla{1.10, models.OptionCall}) {
		t.Errorf("strike vanilla: %+v", stub.vanillas[0])
	}
	if stub.vanillas[1] != (stubVanilla{1.20, models.OptionCall}) {
		t.Errorf("barrier vanilla: %+v", stub.vanillas[1])
	}
	if stub.digitals[0].optionType != models.OptionCall || stub.digitals[0].cash != 5 || stub.digitals[0].trigger != 1.20 {
		t.Errorf("rebate digital: %+v", stub.digitals[0])
	}
	if stub.digitals[1].optionType != models.OptionCall || stub.digitals[1].trigger != 1.20 || !almostEqual(stub.digitals[1].cash, 0.10) {
		t.Errorf("main digital: %+v", stub.digitals[1])
	}

	// Marks: rebate 5 + vanillaK 1.10 - vanillaB 1.20 - digital 0.10 = 4.80,
	// scaled by boughtAmount 100.
	npv, _ := outputs.NPV.Float64()
	if !almostEqual(npv, 480) {
		t.Errorf("NPV = %v, want 480", npv)
	}
}

// TestPrice_OutputProjection checks the reporting fields.
func TestPrice_OutputProjection(t *testing.T) {
	engine := NewEngine(stubRegistry(&stubPricer{}))

	trade := barrierTrade(models.OptionPut, models.BarrierDownIn, 1.00, 0, models.PositionLong)
	outputs, err := engine.Price(trade)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}

	if outputs.NPVCurrency != "USD" {
		t.Errorf("NPVCurrency = %s, want USD", outputs.NPVCurrency)
	}
	if outputs.NotionalCurrency != "USD" {
		t.Errorf("NotionalCurrency = %s, want USD", outputs.NotionalCurrency)
	}
	if notional, _ := outputs.Notional.Float64(); notional != 110 {
		t.Errorf("Notional = %v, want 110", notional)
	}
	if !outputs.Maturity.Equal(expiry) {
		t.Errorf("Maturity = %v, want %v", outputs.Maturity, expiry)
	}
	if outputs.Annotations["boughtCurrency"] != "EUR" || outputs.Annotations["soldCurrency"] != "USD" {
		t.Errorf("annotations = %+v", outputs.Annotations)
	}
}

// TestPrice_PremiumMaturityPropagation checks that a premium paying after
// expiry extends the reported maturity.
func TestPrice_PremiumMaturityPropagation(t *testing.T) {
	engine := NewEngine(stubRegistry(&stubPricer{}))

	premiumDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	trade := barrierTrade(models.OptionCall, models.BarrierUpIn, 1.20, 0, models.PositionLong)
	trade.Option.Premiums = []models.PremiumPayment{
		{Amount: 1000, Currency: "USD", PayDate: premiumDate},
	}

	outputs, err := engine.Price(trade)
	if err != nil {
		t.Fatalf("Price returned error: %v", err)
	}
	if !outputs.Maturity.Equal(premiumDate) {
		t.Errorf("Maturity = %v, want %v", outputs.Maturity, premiumDate)
	}
}

// TestPrice_PremiumSign checks that a premium paid by a long holder reduces
// the NPV and is negated for a short position.
func TestPrice_PremiumSign(t *testing.T) {
	base := barrierTrade(models.OptionCall, models.BarrierUpIn, 1.20, 0, models.PositionLong)
	withPremium := base
	withPremium.Option.Premiums = []models.PremiumPayment{
		{Amount: 40, Currency: "USD", PayDate: expiry},
	}

	engine := NewEngine(stubRegistry(&stubPricer{}))
	baseOut, err := engine.Price(base)
	if err != nil {
		t.Fatal(err)
	}
	premOut, err := engine.Price(withPremium)
	if err != nil {
		t.Fatal(err)
	}

	baseNPV, _ := baseOut.NPV.Float64()
	premNPV, _ := premOut.NPV.Float64()
	if !almostEqual(premNPV, baseNPV-40) {
		t.Errorf("premium NPV = %v, want %v", premNPV, baseNPV-40)
	}

	short := withPremium
	short.Option.LongShort = models.PositionShort
	shortOut, err := engine.Price(short)
	if err != nil {
		t.Fatal(err)
	}
	shortNPV, _ := shortOut.NPV.Float64()
	if !almostEqual(shortNPV, -(baseNPV)+40) {
		t.Errorf("short NPV = %v, want %v", shortNPV, -baseNPV+40)
	}
}

// TestPrice_RebateIsolation checks that a zero rebate zeroes the rebate leg
// without changing the main decomposition.
func TestPrice_RebateIsolation(t *testing.T) {
	stubZero := &stubPricer{}
	engineZero := NewEngine(stubRegistry(stubZero))
	outZero, err := engineZero.Price(barrierTrade(models.OptionCall, models.BarrierUpOut, 1.20, 0, models.PositionLong))
	if err != nil {
		t.Fatal(err)
	}

	stubFive := &stubPricer{}
	engineFive := NewEngine(stubRegistry(stubFive))
	outFive, err := engineFive.Price(barrierTrade(models.OptionCall, models.BarrierUpOut, 1.20, 5, models.PositionLong))
	if err != nil {
		t.Fatal(err)
	}

	if len(stubZero.vanillas) != len(stubFive.vanillas) || len(stubZero.digitals) != len(stubFive.digitals) {
		t.Fatalf("rebate changed the selected legs")
	}

	// The stub marks the rebate digital at its cash amount, so the NPV gap
	// is exactly the scaled rebate.
	npvZero, _ := outZero.NPV.Float64()
	npvFive, _ := outFive.NPV.Float64()
	if !almostEqual(npvFive-npvZero, 500) {
		t.Errorf("rebate contribution = %v, want 500", npvFive-npvZero)
	}
}

// TestPrice_ValidationFailures checks every invariant gate.
func TestPrice_ValidationFailures(t *testing.T) {
	engine := NewEngine(stubRegistry(&stubPricer{}))

	cases := []struct {
		name   string
		mutate func(*models.BarrierTrade)
	}{
		{"american style", func(tr *models.BarrierTrade) { tr.Option.Style = "American" }},
		{"no exercise dates", func(tr *models.BarrierTrade) { tr.Option.ExerciseDates = nil }},
		{"two exercise dates", func(tr *models.BarrierTrade) {
			tr.Option.ExerciseDates = append(tr.Option.ExerciseDates, expiry.AddDate(0, 1, 0))
		}},
		{"no barrier levels", func(tr *models.BarrierTrade) { tr.Barrier.Levels = nil }},
		{"two barrier levels", func(tr *models.BarrierTrade) { tr.Barrier.Levels = []float64{1.1, 1.2} }},
		{"american barrier style", func(tr *models.BarrierTrade) { tr.Barrier.Style = "American" }},
		{"negative rebate", func(tr *models.BarrierTrade) { tr.Barrier.Rebate = -1 }},
		{"trade actions", func(tr *models.BarrierTrade) { tr.Actions = []string{"Cancel"} }},
		{"zero bought amount", func(tr *models.BarrierTrade) { tr.Amounts.BoughtAmount = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			trade := barrierTrade(models.OptionCall, models.BarrierUpIn, 1.20, 0, models.PositionLong)
			tc.mutate(&trade)
			_, err := engine.Price(trade)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var ve *errors.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %T (%v), want ValidationError", err, err)
			}
		})
	}
}

// TestPrice_EmptyBarrierStyleAllowed checks that an unset barrier style
// means European monitoring.
func TestPrice_EmptyBarrierStyleAllowed(t *testing.T) {
	engine := NewEngine(stubRegistry(&stubPricer{}))
	trade := barrierTrade(models.OptionCall, models.BarrierUpIn, 1.20, 0, models.PositionLong)
	trade.Barrier.Style = ""
	if _, err := engine.Price(trade); err != nil {
		t.Fatalf("empty barrier style rejected: %v", err)
	}
}

// TestPrice_MissingPricerConfiguration checks ConfigurationError surfaces
// for unregistered pricers.
func TestPrice_MissingPricerConfiguration(t *testing.T) {
	trade := barrierTrade(models.OptionCall, models.BarrierUpIn, 1.20, 0, models.PositionLong)

	t.Run("no vanilla pricer", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterDigital(eurUsd, &stubPricer{})
		_, err := NewEngine(r).Price(trade)
		var ce *errors.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("got %v, want ConfigurationError", err)
		}
	})

	t.Run("no digital pricer", func(t *testing.T) {
		r := NewRegistry()
		r.RegisterVanilla(eurUsd, &stubPricer{})
		_, err := NewEngine(r).Price(trade)
		var ce *errors.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("got %v, want ConfigurationError", err)
		}
	})

	t.Run("no cash pricer for premium currency", func(t *testing.T) {
		r := NewRegistry()
		stub := &stubPricer{}
		r.RegisterVanilla(eurUsd, stub)
		r.RegisterDigital(eurUsd, stub)
		withPremium := trade
		withPremium.Option.Premiums = []models.PremiumPayment{
			{Amount: 10, Currency: "GBP", PayDate: expiry},
		}
		_, err := NewEngine(r).Price(withPremium)
		var ce *errors.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("got %v, want ConfigurationError", err)
		}
	})
}

// TestComposite_EmptyBranchesAddNoLegs checks that "(none)" branches price
// to the rebate leg alone.
func TestComposite_EmptyBranchesAddNoLegs(t *testing.T) {
	stub := &stubPricer{}
	engine := NewEngine(stubRegistry(stub))

	// Call up-and-out with B <= K selects no main legs.
	trade := barrierTrade(models.OptionCall, models.BarrierUpOut, 1.05, 0, models.PositionLong)
	if _, err := engine.Price(trade); err != nil {
		t.Fatal(err)
	}
	if len(stub.vanillas) != 0 {
		t.Errorf("empty branch priced %d vanilla legs", len(stub.vanillas))
	}
	if len(stub.digitals) != 1 {
		t.Errorf("expected only the rebate digital, got %d digitals", len(stub.digitals))
	}
}
