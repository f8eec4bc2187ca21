package response

import (
	"time"

	"locker-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type LockerFreeResponse struct {
	Serial string `json:"locker_serial"`
	Free   int    `json:"free"`
}

type SizeAvailabilityResponse struct {
	SizeID    int                  `json:"size_id"`
	Name      string               `json:"name"`
	Width     float64              `json:"width"`
	Height    float64              `json:"height"`
	Depth     float64              `json:"depth"`
	TotalFree int                  `json:"total_free"`
	Price     float64              `json:"price"`
	Currency  string               `json:"currency"`
	PerLocker []LockerFreeResponse `json:"per_locker"`
}

type AvailabilityResponse struct {
	StoreID            uuid.UUID                  `json:"store_id"`
	StoreName          string                     `json:"store_name"`
	Start              time.Time                  `json:"start"`
	End                time.Time                  `json:"end"`
	Sizes              []SizeAvailabilityResponse `json:"sizes"`
	UnreachableLockers []string                   `json:"unreachable_lockers,omitempty"`
}

func FromStoreAvailability(a *queries.StoreAvailability) *AvailabilityResponse {
	sizes := make([]SizeAvailabilityResponse, len(a.Sizes))
	for i, s := range a.Sizes {
		perLocker := make([]LockerFreeResponse, len(s.PerLocker))
		for j, lf := range s.PerLocker {
			perLocker[j] = LockerFreeResponse(lf)
		}
		fee, _ := a.Fees.Lookup(s.Size.ID)
		sizes[i] = SizeAvailabilityResponse{
			SizeID:    s.Size.ID,
			Name:      s.Size.Name,
			Width:     s.Size.Width,
			Height:    s.Size.Height,
			Depth:     s.Size.Depth,
			TotalFree: s.TotalFree,
			Price:     fee.Value,
			Currency:  fee.Currency,
			PerLocker: perLocker,
		}
	}

	return &AvailabilityResponse{
		StoreID:            a.Store.ID,
		StoreName:          a.Store.Name,
		Start:              a.Start,
		End:                a.End,
		Sizes:              sizes,
		UnreachableLockers: a.Unreachable,
	}
}
