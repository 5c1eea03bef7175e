package api

import (
	"io"
	"net/http"

	resdto "entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/infra/gateway"
	"entitlement-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxNotificationBytes = 1 << 20

type WebhookHandler struct {
	cmds commands.OrderCommands
}

func NewWebhookHandler(cmds commands.OrderCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Payment notification
// @Description Asynchronous payment outcome from the gateway. Replays are answered with the current state.
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} resdto.NotificationResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payments/notify [post]
func (h *WebhookHandler) Notify(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxNotificationBytes))
	if err != nil {
		invalidRequest(c, err, "Unreadable body")
		return
	}
	result, err := h.cmds.HandleNotification(c.Request.Context(), commands.RawNotification{
		Body:      body,
		Signature: c.GetHeader(gateway.SignatureHeader),
		Timestamp: c.GetHeader(gateway.TimestampHeader),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompletionResult(result))
}
