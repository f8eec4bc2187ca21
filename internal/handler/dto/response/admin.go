package response

import "locker-reservation/internal/usecase/commands"

type ReconcileResponse struct {
	Lockers int `json:"lockers"`
	Matched int `json:"matched"`
	Updated int `json:"updated"`
}

func FromBackfillResult(r *commands.BackfillResult) ReconcileResponse {
	return ReconcileResponse(*r)
}
