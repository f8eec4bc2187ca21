package pricing

import "github.com/google/uuid"

// Fee is the price list entry for one compartment size in one store.
type Fee struct {
	SizeID   int
	StoreID  uuid.UUID
	Value    float64 // base daily value
	Discount float64 // percent off each additional day
	Currency string
}

type FeeTable map[int]Fee

func NewFeeTable(fees []Fee) FeeTable {
	t := make(FeeTable, len(fees))
	for _, f := range fees {
		t[f.SizeID] = f
	}
	return t
}

func (t FeeTable) Lookup(sizeID int) (Fee, bool) {
	f, ok := t[sizeID]
	return f, ok
}

func (t FeeTable) Has(sizeID int) bool {
	_, ok := t[sizeID]
	return ok
}
