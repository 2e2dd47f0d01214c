package api

import (
	"net/http"

	reqdto "github.com/sanctumos/clawedroad/internal/handler/dto/request"
	resdto "github.com/sanctumos/clawedroad/internal/handler/dto/response"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	scopePurchases = "purchases"
	scopeSales     = "sales"
)

type TransactionHandler struct {
	cmds commands.TransactionCommands
	q    queries.TransactionQueries
}

func NewTransactionHandler(cmds commands.TransactionCommands, q queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{cmds: cmds, q: q}
}

// @Summary List transactions
// @Description Current status of transactions the caller buys or sells; staff see all
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param scope query string false "purchases or sales; omit for both"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	var (
		views []*queries.TransactionView
		err   error
	)
	switch scope := c.Query("scope"); scope {
	case "":
		views, err = h.q.ListForActor(ctx, actor)
	case scopePurchases:
		views, err = h.q.ListForBuyer(ctx, actor.UserID)
	case scopeSales:
		views, err = h.q.ListForVendor(ctx, actor)
	default:
		abortBadRequest(c, errs.Newf("unknown listing scope %q", scope), "Invalid scope")
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromTransactionList(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get transaction
// @Description Current projection of a transaction with the caller's allowed actions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	view, err := h.q.GetCurrent(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromTransactionView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Transaction history
// @Description Full ordered history of the payment and shipping ledgers
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.HistoryResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/history [get]
func (h *TransactionHandler) History(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	history, err := h.q.History(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistory(history))
}

// @Summary Payment details
// @Description Current status joined with the crypto payment method
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} resdto.PaymentDetailsResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/payment [get]
func (h *TransactionHandler) PaymentDetails(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	view, err := h.q.PaymentDetails(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromPaymentDetails(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Request an action
// @Description release, cancel and partial_refund enqueue a settlement intent; mark_shipped and confirm_received apply directly
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ActionRequest true "Action request"
// @Success 200 {object} resdto.ActionResponse
// @Success 202 {object} resdto.ActionResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/actions [post]
func (h *TransactionHandler) RequestAction(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	var req reqdto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondError(c, errs.Mark(err, errs.ErrDomainValidation))
		return
	}

	result, err := h.cmds.RequestAction(c.Request.Context(), id, actor, in)
	if err != nil {
		respondError(c, err)
		return
	}

	res := resdto.ActionResponse{Action: result.Action.String()}
	if result.Intent == nil {
		c.JSON(http.StatusOK, res)
		return
	}
	res.Intent, err = resdto.FromIntent(result.Intent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, res)
}

// @Summary Append shipping status
// @Description Vendor or staff records a shipping label
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.AppendShippingRequest true "Shipping status"
// @Success 201 {object} resdto.ShippingAppendedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transactions/{id}/shipping [post]
func (h *TransactionHandler) AppendShipping(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	var req reqdto.AppendShippingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	eventID, err := h.cmds.AppendShipping(c.Request.Context(), id, actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ShippingAppendedResponse{ID: eventID})
}

// pathRequest parses the :id path parameter and the caller. It
// aborts the request and returns false when either is missing.
func pathRequest(c *gin.Context) (uuid.UUID, shared.Actor, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortBadRequest(c, err, "Invalid id")
		return uuid.Nil, shared.Actor{}, false
	}
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return uuid.Nil, shared.Actor{}, false
	}
	return id, actor, true
}
