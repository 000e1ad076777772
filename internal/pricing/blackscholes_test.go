package pricing

import (
	"math"
	"testing"

	"option-strategist/internal/errors"
	"option-strategist/internal/models"
)

// Sanity check: an ATM call with time on the clock has value.
func TestCallPriceATM(t *testing.T) {
	bs := New(100, 100, 30, 0.25, 0.05)
	call := bs.CallPrice()
	if call <= 0 {
		t.Fatalf("expected ATM call price > 0, got %f", call)
	}
}

func TestExpiryBoundaryIntrinsic(t *testing.T) {
	tests := []struct {
		name         string
		spot, strike float64
		wantCall     float64
		wantPut      float64
	}{
		{"ITM call", 110, 100, 10, 0},
		{"ITM put", 90, 100, 0, 10},
		{"ATM", 100, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bs := New(tt.spot, tt.strike, 0, 0.25, 0.05)
			if got := bs.CallPrice(); got != tt.wantCall {
				t.Errorf("CallPrice() = %f, want exactly %f", got, tt.wantCall)
			}
			if got := bs.PutPrice(); got != tt.wantPut {
				t.Errorf("PutPrice() = %f, want exactly %f", got, tt.wantPut)
			}
		})
	}
}

func TestExpiryBoundaryGreeks(t *testing.T) {
	bs := New(110, 100, 0, 0.25, 0.05)

	delta, err := bs.Delta(models.Call)
	if err != nil {
		t.Fatal(err)
	}
	if delta != 1 {
		t.Errorf("expired ITM call delta = %f, want 1", delta)
	}

	delta, err = bs.Delta(models.Put)
	if err != nil {
		t.Fatal(err)
	}
	if delta != 0 {
		t.Errorf("expired OTM put delta = %f, want 0", delta)
	}

	if g := bs.Gamma(); g != 0 {
		t.Errorf("expired gamma = %f, want 0", g)
	}
	if v := bs.Vega(); v != 0 {
		t.Errorf("expired vega = %f, want 0", v)
	}
	theta, _ := bs.Theta(models.Call)
	if theta != 0 {
		t.Errorf("expired theta = %f, want 0", theta)
	}
	rho, _ := bs.Rho(models.Call)
	if rho != 0 {
		t.Errorf("expired rho = %f, want 0", rho)
	}
}

// Zero volatility takes the intrinsic-value branch rather than dividing by
// zero in d1.
func TestZeroVolatilityIntrinsic(t *testing.T) {
	bs := New(110, 100, 30, 0, 0.05)
	if got := bs.CallPrice(); got != 10 {
		t.Errorf("zero-vol call = %f, want intrinsic 10", got)
	}
	if got := bs.PutPrice(); got != 0 {
		t.Errorf("zero-vol put = %f, want 0", got)
	}
}

func TestDeepMoneynessLimits(t *testing.T) {
	// Deep ITM call prices near intrinsic value.
	itm := New(200, 100, 30, 0.25, 0.05)
	intrinsic := 100.0
	if price := itm.CallPrice(); price < intrinsic || price > intrinsic+1.0 {
		t.Errorf("deep ITM call = %f, want near intrinsic %f", price, intrinsic)
	}

	// Canonical deep OTM case: spot 50, strike 100, 30 days, 25% vol, 5% rate.
	otm := New(50, 100, 30, 0.25, 0.05)
	if price := otm.CallPrice(); price >= 0.01 {
		t.Errorf("deep OTM call = %f, want < 0.01", price)
	}
}

func TestThetaNegativeATM(t *testing.T) {
	bs := New(100, 100, 60, 0.25, 0.05)
	theta, err := bs.Theta(models.Call)
	if err != nil {
		t.Fatal(err)
	}
	if theta >= 0 {
		t.Errorf("ATM call theta = %f, want negative", theta)
	}
}

func TestUnknownOptionType(t *testing.T) {
	bs := New(100, 100, 30, 0.25, 0.05)

	if _, err := bs.Price("swaption"); !errors.Is(err, errors.ErrUnknownOptionType) {
		t.Errorf("Price: got %v, want ErrUnknownOptionType", err)
	}
	if _, err := bs.Delta(""); !errors.Is(err, errors.ErrUnknownOptionType) {
		t.Errorf("Delta: got %v, want ErrUnknownOptionType", err)
	}
	if _, err := bs.Greeks("x"); !errors.Is(err, errors.ErrUnknownOptionType) {
		t.Errorf("Greeks: got %v, want ErrUnknownOptionType", err)
	}

	var perr *errors.PricingError
	_, err := bs.Price("swaption")
	if !errors.As(err, &perr) {
		t.Errorf("expected a *PricingError, got %T", err)
	}
}

func TestSummaryMatchesParts(t *testing.T) {
	bs := New(100, 105, 45, 0.30, 0.04)

	summary, err := bs.Summary(models.Put)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Price != bs.PutPrice() {
		t.Errorf("summary price = %f, want %f", summary.Price, bs.PutPrice())
	}

	greeks, err := bs.Greeks(models.Put)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Greeks != greeks {
		t.Errorf("summary greeks = %+v, want %+v", summary.Greeks, greeks)
	}
}

// Reference value check against the standard formula, worked out
// independently: spot 100, strike 100, 1 year, 20% vol, 5% rate.
func TestKnownValueOneYearATM(t *testing.T) {
	bs := New(100, 100, 365, 0.20, 0.05)
	call := bs.CallPrice()
	if math.Abs(call-10.4506) > 0.001 {
		t.Errorf("1y ATM call = %f, want 10.4506 +- 0.001", call)
	}
	put := bs.PutPrice()
	if math.Abs(put-5.5735) > 0.001 {
		t.Errorf("1y ATM put = %f, want 5.5735 +- 0.001", put)
	}
}
