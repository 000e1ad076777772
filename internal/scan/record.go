// Package scan holds the data shape produced by the external option screener
// scraper. The scraper itself is a separate process; this package only decodes
// its JSON output into typed records.
package scan

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"option-strategist/internal/errors"
	"option-strategist/internal/pricing"
)

// Number is a float64 that decodes leniently: it accepts JSON numbers or
// strings with currency, percent and thousands symbols, and falls back to 0
// for anything unparseable.
type Number float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*n = 0
		return nil
	}
	switch v := raw.(type) {
	case float64:
		*n = Number(v)
	case string:
		*n = Number(ParseNumber(v))
	default:
		*n = 0
	}
	return nil
}

// ParseNumber parses a screener cell value, stripping $, %, commas and
// whitespace. Unparseable input yields 0.
func ParseNumber(s string) float64 {
	cleaned := strings.NewReplacer("$", "", "%", "", ",", "").Replace(strings.TrimSpace(s))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// Record is one row of screener scan results.
type Record struct {
	Ticker        string `json:"ticker"`
	CompanyName   string `json:"companyName"`
	Price         Number `json:"price"`
	PriceChange   Number `json:"priceChange"`
	IVRank        Number `json:"ivRank"`
	IVPercentile  Number `json:"ivPercentile"`
	Strike        Number `json:"strike"`
	Moneyness     Number `json:"moneyness"`
	ExpDate       string `json:"expDate"`
	DaysToExp     Number `json:"daysToExp"`
	TotalOptVol   Number `json:"totalOptVol"`
	ProbMaxProfit Number `json:"probMaxProfit"`
	MaxProfit     Number `json:"maxProfit"`
	MaxLoss       Number `json:"maxLoss"`
	ReturnPercent Number `json:"returnPercent"`

	ScrapedAt time.Time `json:"scraped_at,omitempty"`
}

// Model builds a pricing model from the record's market fields, with
// volatility and rate supplied by the caller.
func (r Record) Model(volatility, rate float64) pricing.BlackScholes {
	return pricing.New(float64(r.Price), float64(r.Strike), float64(r.DaysToExp), volatility, rate)
}

// payload is the scraper's top-level JSON output.
type payload struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Results []Record `json:"results"`
}

// DecodeRecords reads the scraper's JSON output. A payload with success=false
// is reported as a DataError carrying the scraper's own error message.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var p payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, errors.NewDataError("scan", "scraper", "decoding scraper output", err)
	}
	if !p.Success {
		return nil, errors.NewDataError("scan", "scraper", p.Error, nil)
	}
	return p.Results, nil
}
