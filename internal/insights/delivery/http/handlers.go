package http

import (
	"time"

	"insight-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// GetDashboard - Aggregated KPI view for one account
// @Summary Get account dashboard
// @Description Aggregated metrics, top content and partialness counts over a period
// @Tags Insights
// @Produce json
// @Param account_id path string true "Account ID"
// @Param period_days query int false "Period window in days (default 30)"
// @Success 200 {object} dashboardResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/dashboard [get]
func (h *handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processDashboardRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetDashboard: processDashboardRequest failed: %v", err)
		response.Error(c, errInvalidPeriod, h.discord)
		return
	}

	output, err := h.uc.GetDashboard(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetDashboard: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// GetMediaList - Media with their latest insight snapshots
// @Summary List media with insights
// @Tags Insights
// @Produce json
// @Param account_id path string true "Account ID"
// @Param kind query string false "Filter by media kind"
// @Param sort query string false "Order by score | reach | views (default: newest first)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} mediaListResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/media [get]
func (h *handler) GetMediaList(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processMediaListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetMediaList: processMediaListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetMediaList(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetMediaList: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMediaListResp(output))
}

// GetMediaInsights - One media object with its snapshot
// @Summary Get media insights
// @Tags Insights
// @Produce json
// @Param account_id path string true "Account ID"
// @Param media_id path string true "Media ID"
// @Success 200 {object} mediaInsightResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/media/{media_id}/insights [get]
func (h *handler) GetMediaInsights(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processMediaInsightsRequest(c)

	output, err := h.uc.GetMediaInsights(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetMediaInsights: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newMediaInsightResp(output.Item))
}

// GetTopContent - Ranked content list
// @Summary Top content
// @Description Ranks stored snapshots by score, reach or views
// @Tags Insights
// @Produce json
// @Param account_id path string true "Account ID"
// @Param rank_by query string false "score | reach | views"
// @Param limit query int false "Max items"
// @Success 200 {object} topContentResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/top-content [get]
func (h *handler) GetTopContent(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processTopContentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetTopContent: processTopContentRequest failed: %v", err)
		response.Error(c, errInvalidRankBy, h.discord)
		return
	}

	output, err := h.uc.GetTopContent(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.GetTopContent: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, topContentResp{Items: newMediaInsightResps(output.Items)})
}

// RequestSync - Queue a sync job for the account
// @Summary Request account sync
// @Tags Insights
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} syncResp
// @Failure 409 {object} response.Resp
// @Router /api/v1/accounts/{account_id}/sync [post]
func (h *handler) RequestSync(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc := h.processSyncRequest(c)

	output, err := h.uc.RequestSync(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "insights.delivery.http.RequestSync: usecase failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, syncResp{
		JobID:       output.JobID,
		RequestedAt: output.RequestedAt.Format(time.RFC3339),
	})
}
