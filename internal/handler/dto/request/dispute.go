package request

import (
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
)

// ClaimRequest is used both to open a dispute and to add a claim. The
// stored body is the reason and the message separated by a blank line.
type ClaimRequest struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (r *ClaimRequest) ToInput() commands.ClaimInput {
	return commands.ClaimInput{Reason: r.Reason, Message: r.Message}
}

type PartialRefundRequest struct {
	RefundPercent float64 `json:"refund_percent" binding:"required"`
}
