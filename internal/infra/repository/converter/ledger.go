package converter

import (
	"github.com/sanctumos/clawedroad/internal/domain/ledger"
	sqlc "github.com/sanctumos/clawedroad/internal/infra/sqlc/generated"
	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"
)

func StatusEventToInsertParams(e *ledger.StatusEvent) (sqlc.InsertTransactionStatusParams, error) {
	return sqlc.InsertTransactionStatusParams{
		TransactionUUID:    e.TransactionID(),
		Time:               pgconv.TimeToPgtype(e.Time()),
		Amount:             pgconv.DecimalToNumeric(e.Amount()),
		Status:             e.Status().String(),
		Comment:            e.Comment(),
		UserUUID:           pgconv.UUIDPtrToPgtype(e.UserID()),
		PaymentReceiptUUID: pgconv.UUIDPtrToPgtype(e.PaymentReceiptID()),
	}, nil
}

func ShippingEventToInsertParams(e *ledger.ShippingEvent) sqlc.InsertShippingStatusParams {
	return sqlc.InsertShippingStatusParams{
		TransactionUUID: e.TransactionID(),
		Time:            pgconv.TimeToPgtype(e.Time()),
		Status:          e.Status().String(),
		Comment:         e.Comment(),
		UserUUID:        pgconv.UUIDPtrToPgtype(e.UserID()),
	}
}

// Rows were validated on the way in, so labels are trusted here.
func StatusEventFromRow(row sqlc.TransactionStatus) (*ledger.StatusEvent, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}
	return ledger.ReconstructStatusEvent(row.ID, ledger.StatusEventParams{
		TransactionID:    row.TransactionUUID,
		Status:           ledger.PaymentStatus(row.Status),
		Amount:           amount,
		Comment:          row.Comment,
		UserID:           pgconv.UUIDPtrFromPgtype(row.UserUUID),
		PaymentReceiptID: pgconv.UUIDPtrFromPgtype(row.PaymentReceiptUUID),
		Time:             pgconv.TimeFromPgtype(row.Time),
	}), nil
}

func ShippingEventFromRow(row sqlc.ShippingStatus) *ledger.ShippingEvent {
	return ledger.ReconstructShippingEvent(row.ID, ledger.ShippingEventParams{
		TransactionID: row.TransactionUUID,
		Status:        ledger.ShippingStatus(row.Status),
		Comment:       row.Comment,
		UserID:        pgconv.UUIDPtrFromPgtype(row.UserUUID),
		Time:          pgconv.TimeFromPgtype(row.Time),
	})
}

func StatusEventsFromRows(rows []sqlc.TransactionStatus) ([]*ledger.StatusEvent, error) {
	events := make([]*ledger.StatusEvent, 0, len(rows))
	for _, row := range rows {
		e, err := StatusEventFromRow(row)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func ShippingEventsFromRows(rows []sqlc.ShippingStatus) []*ledger.ShippingEvent {
	events := make([]*ledger.ShippingEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, ShippingEventFromRow(row))
	}
	return events
}
