package api

import (
	"net/http"

	resdto "entitlement-engine/internal/handler/dto/response"
	"entitlement-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary Get package
// @Description Display data for a sellable package. May trail catalog edits by the cache TTL.
// @Tags catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} resdto.PackageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/packages/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.catalog.GetPackage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromPackageView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
