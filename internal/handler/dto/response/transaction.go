package response

import (
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
)

type TransactionResponse struct {
	ID                string   `json:"id"`
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	StoreID           string   `json:"store_id"`
	StoreName         *string  `json:"store_name,omitempty"`
	BuyerID           string   `json:"buyer_id"`
	BuyerUsername     *string  `json:"buyer_username,omitempty"`
	DisputeID         *string  `json:"dispute_id,omitempty" copier:"-"`
	DisputeStatus     *string  `json:"dispute_status,omitempty"`
	BuyerConfirmedAt  *int64   `json:"buyer_confirmed_at,omitempty" copier:"-"`
	Status            string   `json:"status"`
	Amount            string   `json:"amount"`
	Comment           string   `json:"comment"`
	CreatedAt         int64    `json:"created_at"`
	UpdatedAt         int64    `json:"updated_at"`
	ShippingStatus    string   `json:"shipping_status"`
	ShippingUpdatedAt *int64   `json:"shipping_updated_at,omitempty" copier:"-"`
	AllowedActions    []string `json:"allowed_actions"`
}

func FromTransactionView(v *queries.TransactionView) (*TransactionResponse, error) {
	res := &TransactionResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	res.DisputeID = uuidString(v.DisputeID)
	res.BuyerConfirmedAt = unixTime(v.BuyerConfirmedAt)
	res.ShippingUpdatedAt = unixTime(v.ShippingUpdatedAt)
	if res.AllowedActions == nil {
		res.AllowedActions = []string{}
	}
	return res, nil
}

func FromTransactionList(views []*queries.TransactionView) ([]*TransactionResponse, error) {
	res := make([]*TransactionResponse, 0, len(views))
	for _, v := range views {
		item, err := FromTransactionView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

type PaymentDetailsResponse struct {
	*TransactionResponse
	EscrowAddress  *string `json:"escrow_address,omitempty"`
	RequiredAmount string  `json:"required_amount"`
	ChainID        int64   `json:"chain_id"`
	Currency       string  `json:"currency"`
}

func FromPaymentDetails(v *queries.PaymentDetailsView) (*PaymentDetailsResponse, error) {
	tx, err := FromTransactionView(&v.TransactionView)
	if err != nil {
		return nil, err
	}
	return &PaymentDetailsResponse{
		TransactionResponse: tx,
		EscrowAddress:       v.EscrowAddress,
		RequiredAmount:      v.RequiredAmount.String(),
		ChainID:             v.ChainID,
		Currency:            v.Currency,
	}, nil
}

type StatusEventResponse struct {
	ID               int64   `json:"id"`
	Time             int64   `json:"time"`
	Status           string  `json:"status"`
	Amount           string  `json:"amount"`
	Comment          string  `json:"comment"`
	UserID           *string `json:"user_id,omitempty"`
	PaymentReceiptID *string `json:"payment_receipt_id,omitempty"`
}

type ShippingEventResponse struct {
	ID      int64   `json:"id"`
	Time    int64   `json:"time"`
	Status  string  `json:"status"`
	Comment string  `json:"comment"`
	UserID  *string `json:"user_id,omitempty"`
}

type HistoryResponse struct {
	TransactionID string                   `json:"transaction_id"`
	Statuses      []*StatusEventResponse   `json:"statuses"`
	Shipping      []*ShippingEventResponse `json:"shipping"`
}

func FromHistory(h *queries.TransactionHistory) *HistoryResponse {
	res := &HistoryResponse{
		TransactionID: h.TransactionID.String(),
		Statuses:      make([]*StatusEventResponse, len(h.Statuses)),
		Shipping:      make([]*ShippingEventResponse, len(h.Shipping)),
	}
	for i, ev := range h.Statuses {
		res.Statuses[i] = &StatusEventResponse{
			ID:               ev.ID,
			Time:             ev.Time.Unix(),
			Status:           ev.Status,
			Amount:           ev.Amount.String(),
			Comment:          ev.Comment,
			UserID:           uuidString(ev.UserID),
			PaymentReceiptID: uuidString(ev.PaymentReceiptID),
		}
	}
	for i, ev := range h.Shipping {
		res.Shipping[i] = &ShippingEventResponse{
			ID:      ev.ID,
			Time:    ev.Time.Unix(),
			Status:  ev.Status,
			Comment: ev.Comment,
			UserID:  uuidString(ev.UserID),
		}
	}
	return res
}

// ActionResponse answers POST /transactions/:id/actions. Intent is set only
// for actions that go through the settlement queue.
type ActionResponse struct {
	Action string          `json:"action"`
	Intent *IntentResponse `json:"intent,omitempty"`
}

type ShippingAppendedResponse struct {
	ID int64 `json:"id"`
}
