package locker

import "time"

// Availability is the free count the hardware reports for one size in one locker.
type Availability struct {
	SizeID int
	Free   int
}

type Box struct {
	ID         int
	PhysicalID int
	SizeID     int
}

type Token struct {
	Value string
	BoxID *int
	Start time.Time
	End   time.Time
}

type Locker struct {
	Serial string
	Boxes  []Box
	Tokens []Token
}

func (l Locker) BoxByID(id int) (Box, bool) {
	for _, b := range l.Boxes {
		if b.ID == id {
			return b, true
		}
	}
	return Box{}, false
}

// TokenRequest asks the hardware for a new token. Confirmed=false reserves capacity
// and yields a transaction id to be confirmed after payment.
type TokenRequest struct {
	SizeID    int
	Start     time.Time
	End       time.Time
	Confirmed bool
	BoxID     *int
}

type TokenEdit struct {
	Token string
	Start *time.Time
	End   *time.Time
	BoxID *int
}

type IssuedToken struct {
	TransactionID string
	Token         string
	BoxID         *int
	End           *time.Time
}
