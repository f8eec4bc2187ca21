package availability

import (
	"errors"
	"fmt"
)

var ErrNoCapacity = errors.New("no locker has free capacity for the size")

type Allocation struct {
	SizeID       int
	LockerSerial string
}

// Allocator hands out one locker per unit. It prefers the most recently reported
// locker that still has room and decrements its free count; it does not balance load.
type Allocator struct {
	free map[int][]LockerFree
}

func NewAllocator(sizes []SizeAvailability) *Allocator {
	free := make(map[int][]LockerFree, len(sizes))
	for _, s := range sizes {
		lockers := make([]LockerFree, len(s.PerLocker))
		copy(lockers, s.PerLocker)
		free[s.Size.ID] = lockers
	}
	return &Allocator{free: free}
}

func (a *Allocator) Allocate(sizeID int) (Allocation, error) {
	lockers := a.free[sizeID]
	for i := len(lockers) - 1; i >= 0; i-- {
		if lockers[i].Free > 0 {
			lockers[i].Free--
			return Allocation{SizeID: sizeID, LockerSerial: lockers[i].Serial}, nil
		}
	}
	return Allocation{}, fmt.Errorf("size %d: %w", sizeID, ErrNoCapacity)
}

// AllocateUnits allocates quantity units of a size, all or nothing.
func (a *Allocator) AllocateUnits(sizeID, quantity int) ([]Allocation, error) {
	snapshot := make([]LockerFree, len(a.free[sizeID]))
	copy(snapshot, a.free[sizeID])

	out := make([]Allocation, 0, quantity)
	for range quantity {
		alloc, err := a.Allocate(sizeID)
		if err != nil {
			a.free[sizeID] = snapshot
			return nil, err
		}
		out = append(out, alloc)
	}
	return out, nil
}

func (a *Allocator) Free(sizeID int) int {
	total := 0
	for _, l := range a.free[sizeID] {
		total += l.Free
	}
	return total
}
