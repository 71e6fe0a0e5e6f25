package http

import (
	"insight-srv/internal/insights"
	"insight-srv/internal/model"
	"insight-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processDashboardRequest(c *gin.Context) (insights.GetDashboardInput, model.Scope, error) {
	var req getDashboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return insights.GetDashboardInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return insights.GetDashboardInput{
		AccountID:  c.Param("account_id"),
		PeriodDays: req.PeriodDays,
	}, sc, nil
}

func (h *handler) processMediaListRequest(c *gin.Context) (insights.GetMediaListInput, model.Scope, error) {
	var req getMediaListReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return insights.GetMediaListInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return insights.GetMediaListInput{
		AccountID: c.Param("account_id"),
		Kind:      req.Kind,
		Sort:      insights.RankBy(req.Sort),
		PagQuery:  req.PaginateQuery,
	}, sc, nil
}

func (h *handler) processMediaInsightsRequest(c *gin.Context) (insights.GetMediaInsightsInput, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return insights.GetMediaInsightsInput{
		AccountID: c.Param("account_id"),
		MediaID:   c.Param("media_id"),
	}, sc
}

func (h *handler) processTopContentRequest(c *gin.Context) (insights.GetTopContentInput, model.Scope, error) {
	var req getTopContentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return insights.GetTopContentInput{}, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return insights.GetTopContentInput{
		AccountID: c.Param("account_id"),
		RankBy:    insights.RankBy(req.RankBy),
		Limit:     req.Limit,
	}, sc, nil
}

func (h *handler) processSyncRequest(c *gin.Context) (insights.RequestSyncInput, model.Scope) {
	sc := scope.GetScopeFromContext(c.Request.Context())
	return insights.RequestSyncInput{
		AccountID: c.Param("account_id"),
	}, sc
}
