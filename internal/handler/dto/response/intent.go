package response

import (
	"github.com/sanctumos/clawedroad/internal/domain/intent"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
)

type IntentResponse struct {
	ID            int64    `json:"id"`
	TransactionID string   `json:"transaction_id"`
	Action        string   `json:"action"`
	RefundPercent *float64 `json:"refund_percent,omitempty"`
	RequestedAt   int64    `json:"requested_at"`
	RequestedBy   *string  `json:"requested_by,omitempty" copier:"-"`
	Status        string   `json:"status"`
	ClaimedBy     *string  `json:"claimed_by,omitempty"`
	ClaimedAt     *int64   `json:"claimed_at,omitempty" copier:"-"`
	UpdatedAt     int64    `json:"updated_at"`
}

func FromIntentView(v *queries.IntentView) (*IntentResponse, error) {
	res := &IntentResponse{}
	if err := copyView(res, v); err != nil {
		return nil, err
	}
	res.RequestedBy = uuidString(v.RequestedBy)
	res.ClaimedAt = unixTime(v.ClaimedAt)
	return res, nil
}

func FromIntent(in *intent.Intent) (*IntentResponse, error) {
	return FromIntentView(queries.NewIntentView(in))
}

func FromIntentList(views []*queries.IntentView) ([]*IntentResponse, error) {
	res := make([]*IntentResponse, 0, len(views))
	for _, v := range views {
		item, err := FromIntentView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}
