package reservation

import "time"

// TokenUse is what an accepted hardware token event means for the reservations of a locker.
type TokenUse int

const (
	TokenUseUnmatched TokenUse = iota
	TokenUsePickup
	TokenUseExpired
	TokenUseDuplicateDelivery
	TokenUseFirstDelivery
)

func (u TokenUse) String() string {
	switch u {
	case TokenUsePickup:
		return "pickup"
	case TokenUseExpired:
		return "expired"
	case TokenUseDuplicateDelivery:
		return "duplicate-delivery"
	case TokenUseFirstDelivery:
		return "first-delivery"
	default:
		return "unmatched"
	}
}

// ClassifyTokenUse checks user tokens before delivery tokens.
func ClassifyTokenUse(rs []*Reservation, token string, now time.Time) (TokenUse, *Reservation) {
	for _, r := range rs {
		if r.MatchesUserToken(token) {
			if r.IsWithin(now) {
				return TokenUsePickup, r
			}
			return TokenUseExpired, r
		}
	}
	for _, r := range rs {
		if !r.MatchesDeliveryToken(token) {
			continue
		}
		if r.HasUserToken() {
			return TokenUseDuplicateDelivery, r
		}
		return TokenUseFirstDelivery, r
	}
	return TokenUseUnmatched, nil
}
