package api

import (
	"net/http"

	reqdto "entitlement-engine/internal/handler/dto/request"
	resdto "entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/handler/middleware"
	"entitlement-engine/internal/pkg/cookie"
	"entitlement-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const exchangeSecretHeader = "X-Handoff-Secret"

type HandoffHandler struct {
	cmds commands.HandoffCommands
}

func NewHandoffHandler(cmds commands.HandoffCommands) *HandoffHandler {
	return &HandoffHandler{cmds: cmds}
}

// @Summary Issue handoff
// @Description Package the current session for the second application and return where to send the browser
// @Tags handoff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueHandoffRequest false "Redirect hint and entitlement"
// @Success 200 {object} resdto.HandoffResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/handoff [post]
func (h *HandoffHandler) Issue(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req reqdto.IssueHandoffRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			invalidRequest(c, err, "Invalid request")
			return
		}
	}

	url, err := h.cmds.Issue(c.Request.Context(), commands.IssueHandoffInput{
		UserID:        actor.UserID,
		AccessToken:   middleware.GetAccessToken(c),
		RefreshToken:  cookie.RefreshToken(c),
		Redirect:      req.Redirect,
		EntitlementID: req.EntitlementID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.HandoffResponse{RedirectURL: url})
}

// @Summary Exchange handoff code
// @Description Server-to-server: trade a single-use code for the credential bundle
// @Tags handoff
// @Accept json
// @Produce json
// @Param X-Handoff-Secret header string true "Shared exchange secret"
// @Param request body reqdto.ExchangeHandoffRequest true "Code"
// @Success 200 {object} resdto.ExchangeHandoffResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/handoff/exchange [post]
func (h *HandoffHandler) Exchange(c *gin.Context) {
	var req reqdto.ExchangeHandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err, "Invalid request")
		return
	}
	cred, err := h.cmds.Exchange(c.Request.Context(), req.Code, c.GetHeader(exchangeSecretHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resdto.FromCredential(cred))
}
