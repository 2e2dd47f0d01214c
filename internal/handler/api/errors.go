package api

import (
	"log/slog"
	"net/http"

	"github.com/sanctumos/clawedroad/internal/handler/httperr"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target error
	status int
	code   string
	msg    string
}

// Checked in order; the first sentinel the error is marked with wins.
var errorMappings = []errorMapping{
	{errs.ErrDomainValidation, http.StatusBadRequest, httperr.CodeInvalidRequest, "Invalid request"},
	{errs.ErrStaffOnly, http.StatusForbidden, "STAFF_ONLY", "Staff only"},
	{errs.ErrTransactionAccess, http.StatusForbidden, "ACCESS_DENIED", "Access denied"},
	{errs.ErrActionNotAllowed, http.StatusForbidden, "ACTION_NOT_ALLOWED", "Action not allowed"},
	{errs.ErrTransactionNotFound, http.StatusNotFound, "TRANSACTION_NOT_FOUND", "Transaction not found"},
	{errs.ErrDisputeNotFound, http.StatusNotFound, "DISPUTE_NOT_FOUND", "Dispute not found"},
	{errs.ErrIntentNotFound, http.StatusNotFound, "INTENT_NOT_FOUND", "Intent not found"},
	{errs.ErrDisputeAlreadyExists, http.StatusConflict, "DISPUTE_EXISTS", "Dispute already exists"},
	{errs.ErrDisputeResolved, http.StatusConflict, "DISPUTE_RESOLVED", "Dispute is resolved"},
	{errs.ErrIntentNotClaimable, http.StatusConflict, "INTENT_NOT_CLAIMABLE", "Intent is not claimable"},
	{errs.ErrDisputeCreateFailed, http.StatusServiceUnavailable, "DISPUTE_CREATE_FAILED", "could not create dispute"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			resp := httperr.New(m.status, m.code, m.msg)
			// Only client errors expose the domain message.
			if m.status == http.StatusBadRequest || m.status == http.StatusForbidden {
				resp = resp.WithDetail(detailOf(err))
			}
			httperr.AbortWithError(c, err, resp)
			return
		}
	}

	slog.Error("unmapped handler error",
		"request_id", middleware.GetRequestID(c),
		"route", c.FullPath(),
		"stack", errs.StackLines(err, 12))
	httperr.AbortWithError(c, err, httperr.New(http.StatusInternalServerError, httperr.CodeInternal, "Internal server error"))
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, errs.New("missing caller identity"),
		httperr.New(http.StatusUnauthorized, httperr.CodeUnauthorized, "Unauthorized"))
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, err, httperr.New(http.StatusBadRequest, httperr.CodeInvalidRequest, msg))
}

func detailOf(err error) string {
	if hint := errs.Hint(err); hint != "" {
		return hint
	}
	return err.Error()
}
