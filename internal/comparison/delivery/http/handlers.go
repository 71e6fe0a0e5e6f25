package http

import (
	"insight-srv/internal/comparison"
	"insight-srv/pkg/response"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// GetSummary - Period-over-period comparison of account aggregates
// @Summary Insights summary with period comparison
// @Description Aggregates the last N days and compares them against the N days before
// @Tags Comparison
// @Produce json
// @Param account_id path string true "Account ID"
// @Param days query int false "Window length in days (default 30)"
// @Success 200 {object} summaryResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/insights/summary [get]
func (h *handler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	var req getSummaryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "comparison.delivery.http.GetSummary: bind failed: %v", err)
		response.Error(c, errInvalidPeriod, h.discord)
		return
	}

	sc := scope.GetScopeFromContext(ctx)
	output, err := h.uc.GetSummary(ctx, sc, comparison.GetSummaryInput{
		AccountID:  c.Param("account_id"),
		PeriodDays: req.Days,
	})
	if err != nil {
		h.l.Errorf(ctx, "comparison.delivery.http.GetSummary: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSummaryResp(output))
}
