package request

import (
	"github.com/sanctumos/clawedroad/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimIntentRequest struct {
	WorkerID string `json:"worker_id" binding:"required,max=255"`
}

// Amount accepts a JSON string or number and is parsed from its text.
type CompleteIntentRequest struct {
	Amount           *decimal.Decimal `json:"amount" swaggertype:"string"`
	Comment          string           `json:"comment" binding:"max=1000"`
	PaymentReceiptID *uuid.UUID       `json:"payment_receipt_id"`
}

func (r *CompleteIntentRequest) ToInput() commands.CompleteInput {
	return commands.CompleteInput{
		Amount:           r.Amount,
		Comment:          r.Comment,
		PaymentReceiptID: r.PaymentReceiptID,
	}
}

type FailIntentRequest struct {
	Reason       string `json:"reason" binding:"max=1000"`
	AppendFailed bool   `json:"append_failed"`
}

func (r *FailIntentRequest) ToInput() commands.FailInput {
	return commands.FailInput{Reason: r.Reason, AppendFailed: r.AppendFailed}
}

type MarkIntentRequest struct {
	Status string `json:"status" binding:"required"`
}
