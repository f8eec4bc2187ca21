package pricing

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidRange    = errors.New("end must not be before start")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrNoSelections    = errors.New("at least one size must be selected")
)

type Selection struct {
	SizeID   int
	Quantity int
}

// Adjustment rewrites a subtotal, e.g. a coupon.
type Adjustment interface {
	Apply(subtotal float64) float64
}

type Line struct {
	SizeID               int
	Quantity             int
	Days                 int
	UnitPrice            float64
	FirstDayAmount       float64
	AdditionalDaysAmount float64
	Total                float64
	Currency             string
}

type Quote struct {
	Lines        []Line
	Days         int
	Subtotal     float64
	Discount     float64
	Total        float64
	Currency     string
	MissingSizes []int
}

func (q Quote) Complete() bool {
	return len(q.MissingSizes) == 0
}

// Days counts whole days between start and end, rounding to the nearest day.
func Days(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

func Calculate(selections []Selection, start, end time.Time, fees FeeTable, adj Adjustment) (Quote, error) {
	if len(selections) == 0 {
		return Quote{}, ErrNoSelections
	}
	if end.Before(start) {
		return Quote{}, ErrInvalidRange
	}

	days := Days(start, end)
	q := Quote{Days: days}

	var subtotal float64
	for _, sel := range selections {
		if sel.Quantity <= 0 {
			return Quote{}, ErrInvalidQuantity
		}
		fee, ok := fees.Lookup(sel.SizeID)
		if !ok {
			q.MissingSizes = append(q.MissingSizes, sel.SizeID)
			continue
		}

		line, cost := priceLine(fee, sel.Quantity, days)
		subtotal += cost
		if q.Currency == "" {
			q.Currency = fee.Currency
		}
		q.Lines = append(q.Lines, line)
	}

	total := subtotal
	if adj != nil {
		total = adj.Apply(subtotal)
	}

	q.Subtotal = round2(subtotal)
	q.Total = round2(total)
	q.Discount = round2(subtotal - total)
	return q, nil
}

func priceLine(fee Fee, quantity, days int) (Line, float64) {
	first := fee.Value * float64(quantity)
	var additional float64
	if days >= 1 {
		additional = fee.Value * float64(quantity) * float64(days) * (100 - fee.Discount) / 100
	}

	cost := first + additional
	return Line{
		SizeID:               fee.SizeID,
		Quantity:             quantity,
		Days:                 days,
		UnitPrice:            fee.Value,
		FirstDayAmount:       round2(first),
		AdditionalDaysAmount: round2(additional),
		Total:                round2(cost),
		Currency:             fee.Currency,
	}, cost
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
