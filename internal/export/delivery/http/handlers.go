package http

import (
	"insight-srv/internal/export"
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Create - Generate a CSV export of the account's snapshots
// @Summary Create export
// @Description Builds a CSV of the account's latest snapshots, uploads it and returns a download link
// @Tags Exports
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} createResp
// @Failure 422 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/exports [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.Create(ctx, sc, export.CreateInput{
		AccountID: c.Param("account_id"),
	})
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.Create: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, createResp{
		ID:          output.ID,
		Status:      output.Status,
		RowCount:    output.RowCount,
		DownloadURL: output.DownloadURL,
	})
}

// GetDetail - One export record
// @Summary Get export detail
// @Tags Exports
// @Produce json
// @Param export_id path string true "Export ID"
// @Success 200 {object} detailResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/exports/{export_id} [get]
func (h *handler) GetDetail(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.GetDetail(ctx, sc, c.Param("export_id"))
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GetDetail: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newDetailResp(output))
}
