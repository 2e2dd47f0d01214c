package api

import (
	"net/http"

	reqdto "github.com/sanctumos/clawedroad/internal/handler/dto/request"
	resdto "github.com/sanctumos/clawedroad/internal/handler/dto/response"
	"github.com/sanctumos/clawedroad/internal/handler/middleware"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DisputeHandler struct {
	cmds commands.DisputeCommands
	q    queries.DisputeQueries
}

func NewDisputeHandler(cmds commands.DisputeCommands, q queries.DisputeQueries) *DisputeHandler {
	return &DisputeHandler{cmds: cmds, q: q}
}

// @Summary Open dispute
// @Description Opens a dispute on the transaction, freezes the payment and stores the first claim
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param request body reqdto.ClaimRequest true "First claim"
// @Success 201 {object} resdto.DisputeResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /transactions/{id}/disputes [post]
func (h *DisputeHandler) Open(c *gin.Context) {
	transactionID, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	var req reqdto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	d, err := h.cmds.OpenDispute(c.Request.Context(), transactionID, actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	view, err := h.q.Get(c.Request.Context(), d.ID(), actor)
	if err != nil {
		// The dispute exists; answer with what the command returned.
		c.JSON(http.StatusCreated, resdto.FromDispute(d))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDisputeView(view))
}

// @Summary Get dispute
// @Description Dispute with its claims, visible to the transaction's parties and staff
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} resdto.DisputeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /disputes/{id} [get]
func (h *DisputeHandler) Get(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDisputeView(view))
}

// @Summary Add claim
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body reqdto.ClaimRequest true "Claim"
// @Success 201 {object} resdto.ClaimAddedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /disputes/{id}/claims [post]
func (h *DisputeHandler) AddClaim(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	var req reqdto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	claimID, err := h.cmds.AddClaim(c.Request.Context(), id, actor, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ClaimAddedResponse{ID: claimID})
}

// @Summary Resolve dispute
// @Description Staff only. Leaves the payment status untouched
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} resdto.DisputeResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /disputes/{id}/resolve [post]
func (h *DisputeHandler) Resolve(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	d, err := h.cmds.Resolve(c.Request.Context(), id, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDispute(d))
}

// @Summary Partial refund
// @Description Staff only. Enqueues a partial refund intent for the disputed transaction
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param request body reqdto.PartialRefundRequest true "Refund percent in (0, 100]"
// @Success 202 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /disputes/{id}/partial-refund [post]
func (h *DisputeHandler) PartialRefund(c *gin.Context) {
	id, actor, ok := pathRequest(c)
	if !ok {
		return
	}
	var req reqdto.PartialRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	in, err := h.cmds.PartialRefund(c.Request.Context(), id, actor, req.RefundPercent)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromIntent(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, res)
}

// @Summary Open disputes
// @Description Staff queue of unresolved disputes, oldest first
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OpenDisputeResponse
// @Failure 403 {object} map[string]string
// @Router /staff/disputes [get]
func (h *DisputeHandler) ListOpen(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthorized(c)
		return
	}
	items, err := h.q.ListOpen(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromOpenDisputes(items)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
