package api

import (
	"net/http"
	"strconv"

	"github.com/sanctumos/clawedroad/internal/domain/intent"
	reqdto "github.com/sanctumos/clawedroad/internal/handler/dto/request"
	resdto "github.com/sanctumos/clawedroad/internal/handler/dto/response"
	"github.com/sanctumos/clawedroad/internal/pkg/errs"
	"github.com/sanctumos/clawedroad/internal/usecase/commands"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// SettlementHandler is the intent API polled by the settlement worker.
type SettlementHandler struct {
	cmds commands.SettlementCommands
	q    queries.SettlementQueries
}

func NewSettlementHandler(cmds commands.SettlementCommands, q queries.SettlementQueries) *SettlementHandler {
	return &SettlementHandler{cmds: cmds, q: q}
}

// @Summary Pending intents
// @Description Pending settlement intents in request order
// @Tags settlement
// @Produce json
// @Security BearerAuth
// @Param action query string false "RELEASE, CANCEL or PARTIAL_REFUND"
// @Success 200 {array} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Router /settlement/intents [get]
func (h *SettlementHandler) Pending(c *gin.Context) {
	var action *intent.Action
	if raw := c.Query("action"); raw != "" {
		a, err := intent.NewAction(raw)
		if err != nil {
			abortBadRequest(c, err, "Invalid action")
			return
		}
		action = &a
	}

	views, err := h.q.PendingIntents(c.Request.Context(), action)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromIntentList(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Claim intent
// @Description Moves a pending intent to in_progress; a second claimer gets 409
// @Tags settlement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Intent ID"
// @Param request body reqdto.ClaimIntentRequest true "Worker identity"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /settlement/intents/{id}/claim [post]
func (h *SettlementHandler) Claim(c *gin.Context) {
	id, ok := intentID(c)
	if !ok {
		return
	}
	var req reqdto.ClaimIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	h.respondIntent(c)(h.cmds.ClaimIntent(c.Request.Context(), id, req.WorkerID))
}

// @Summary Complete intent
// @Description Appends the settled ledger event and marks the intent completed atomically
// @Tags settlement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Intent ID"
// @Param request body reqdto.CompleteIntentRequest false "Outcome"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /settlement/intents/{id}/complete [post]
func (h *SettlementHandler) Complete(c *gin.Context) {
	id, ok := intentID(c)
	if !ok {
		return
	}
	var req reqdto.CompleteIntentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.respondIntent(c)(h.cmds.CompleteIntent(c.Request.Context(), id, req.ToInput()))
}

// @Summary Fail intent
// @Description Marks the intent failed and optionally appends FAILED to the ledger
// @Tags settlement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Intent ID"
// @Param request body reqdto.FailIntentRequest false "Failure"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /settlement/intents/{id}/fail [post]
func (h *SettlementHandler) Fail(c *gin.Context) {
	id, ok := intentID(c)
	if !ok {
		return
	}
	var req reqdto.FailIntentRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	h.respondIntent(c)(h.cmds.FailIntent(c.Request.Context(), id, req.ToInput()))
}

// @Summary Mark intent status
// @Description Sets completed or failed without touching the ledger
// @Tags settlement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Intent ID"
// @Param request body reqdto.MarkIntentRequest true "Terminal status"
// @Success 200 {object} resdto.IntentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /settlement/intents/{id} [patch]
func (h *SettlementHandler) Mark(c *gin.Context) {
	id, ok := intentID(c)
	if !ok {
		return
	}
	var req reqdto.MarkIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}
	h.respondIntent(c)(h.cmds.MarkIntentStatus(c.Request.Context(), id, req.Status))
}

func (h *SettlementHandler) respondIntent(c *gin.Context) func(*intent.Intent, error) {
	return func(in *intent.Intent, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		res, err := resdto.FromIntent(in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func intentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errs.New("intent id must be positive")
		}
		abortBadRequest(c, err, "Invalid id")
		return 0, false
	}
	return id, true
}

// bindOptionalJSON accepts an empty body as the zero request.
func bindOptionalJSON(c *gin.Context, obj any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return false
	}
	return true
}
