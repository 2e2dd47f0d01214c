package request

import (
	"github.com/sanctumos/clawedroad/internal/domain/permission"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
)

type ActionRequest struct {
	Action        string   `json:"action" binding:"required"`
	RefundPercent *float64 `json:"refund_percent"`
}

// ToInput leaves the refund range to the use case so that every entry point
// reports it the same way.
func (r *ActionRequest) ToInput() (commands.RequestActionInput, error) {
	action, err := permission.NewAction(r.Action)
	if err != nil {
		return commands.RequestActionInput{}, err
	}
	return commands.RequestActionInput{
		Action:        action,
		RefundPercent: r.RefundPercent,
	}, nil
}

type AppendShippingRequest struct {
	Status  string `json:"status" binding:"required"`
	Comment string `json:"comment" binding:"max=1000"`
}

func (r *AppendShippingRequest) ToInput() commands.AppendShippingInput {
	return commands.AppendShippingInput{Status: r.Status, Comment: r.Comment}
}
