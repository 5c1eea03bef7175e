package api

import (
	"net/http"

	"entitlement-engine/internal/handler/httperr"
	"entitlement-engine/internal/handler/middleware"
	"entitlement-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentActor(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "NOT_AUTHENTICATED", "Unauthorized")
		return queries.Actor{}, false
	}
	role, _ := middleware.GetUserRole(c)
	return queries.Actor{UserID: userID, Role: role}, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		invalidRequest(c, err, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
