package availability

import (
	"sort"

	"locker-reservation/internal/domain/locker"
)

type Size struct {
	ID     int
	Name   string
	Width  float64
	Height float64
	Depth  float64
}

// LockerReport is the hardware answer for one locker serial.
type LockerReport struct {
	Serial string
	Sizes  []locker.Availability
}

type LockerFree struct {
	Serial string
	Free   int
}

type SizeAvailability struct {
	Size      Size
	TotalFree int
	PerLocker []LockerFree // in the order lockers were reported
}

// PriceList tells whether a size can be sold in the store.
type PriceList interface {
	Has(sizeID int) bool
}

// Aggregate merges per-locker reports by size and drops sizes without a fee.
func Aggregate(reports []LockerReport, sizes map[int]Size, prices PriceList) []SizeAvailability {
	bySize := make(map[int]*SizeAvailability)

	for _, rep := range reports {
		for _, a := range rep.Sizes {
			if !prices.Has(a.SizeID) {
				continue
			}
			entry, ok := bySize[a.SizeID]
			if !ok {
				meta, found := sizes[a.SizeID]
				if !found {
					meta = Size{ID: a.SizeID}
				}
				entry = &SizeAvailability{Size: meta}
				bySize[a.SizeID] = entry
			}
			free := max(a.Free, 0)
			entry.TotalFree += free
			entry.PerLocker = append(entry.PerLocker, LockerFree{Serial: rep.Serial, Free: free})
		}
	}

	out := make([]SizeAvailability, 0, len(bySize))
	for _, v := range bySize {
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size.ID < out[j].Size.ID })
	return out
}
