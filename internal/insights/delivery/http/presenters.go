package http

import (
	"time"

	"insight-srv/internal/insights"
	"insight-srv/pkg/paginator"
)

type getDashboardReq struct {
	PeriodDays int `form:"period_days"`
}

type getMediaListReq struct {
	Kind string `form:"kind"`
	Sort string `form:"sort"`
	paginator.PaginateQuery
}

type getTopContentReq struct {
	RankBy string `form:"rank_by"`
	Limit  int    `form:"limit"`
}

type accountResp struct {
	ID                string `json:"id"`
	Username          string `json:"username"`
	Name              string `json:"name"`
	FollowersCount    int64  `json:"followers_count"`
	MediaCount        int64  `json:"media_count"`
	ProfilePictureURL string `json:"profile_picture_url"`
	TokenStatus       string `json:"token_status"`
}

type summaryResp struct {
	MediaCount        int64    `json:"media_count"`
	TotalViews        float64  `json:"total_views"`
	TotalReach        float64  `json:"total_reach"`
	TotalEngagement   float64  `json:"total_engagement"`
	AvgEngagementRate *float64 `json:"avg_engagement_rate"`
}

type mediaResp struct {
	ID            string `json:"id"`
	Kind          string `json:"kind"`
	IsReel        bool   `json:"is_reel"`
	Caption       string `json:"caption"`
	Permalink     string `json:"permalink"`
	MediaURL      string `json:"media_url"`
	LikeCount     int64  `json:"like_count"`
	CommentsCount int64  `json:"comments_count"`
	PublishedAt   string `json:"published_at"`
}

// metricsResp keeps canonical fields nullable: a JSON null means "unknown",
// distinct from a measured zero.
type metricsResp struct {
	Views             *float64 `json:"views"`
	Reach             *float64 `json:"reach"`
	Saves             *float64 `json:"saves"`
	Shares            *float64 `json:"shares"`
	TotalInteractions *float64 `json:"total_interactions"`

	Engagement               float64  `json:"engagement"`
	Score                    float64  `json:"score"`
	EngagementRate           *float64 `json:"engagement_rate"`
	ReachRate                *float64 `json:"reach_rate"`
	ViewsRate                *float64 `json:"views_rate"`
	InteractionsPer1000Reach *float64 `json:"interactions_per_1000_reach"`

	IsPartial      bool     `json:"is_partial"`
	MissingMetrics []string `json:"missing_metrics"`
	HasInsights    bool     `json:"has_insights"`

	Raw map[string]float64 `json:"raw,omitempty"`
}

type mediaInsightResp struct {
	Media   mediaResp   `json:"media"`
	Metrics metricsResp `json:"metrics"`
}

type dashboardResp struct {
	Account      accountResp        `json:"account"`
	Summary      summaryResp        `json:"summary"`
	TopContent   []mediaInsightResp `json:"top_content"`
	PartialCount int                `json:"partial_count"`
	SyncedAt     *string            `json:"synced_at"`
	CacheHit     bool               `json:"cache_hit"`
}

type mediaListResp struct {
	Items     []mediaInsightResp          `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
	CacheHit  bool                        `json:"cache_hit"`
}

type topContentResp struct {
	Items []mediaInsightResp `json:"items"`
}

type syncResp struct {
	JobID       string `json:"job_id"`
	RequestedAt string `json:"requested_at"`
}

func (h *handler) newDashboardResp(o insights.GetDashboardOutput) dashboardResp {
	resp := dashboardResp{
		Account: accountResp{
			ID:                o.Account.ID,
			Username:          o.Account.Username,
			Name:              o.Account.Name,
			FollowersCount:    o.Account.FollowersCount,
			MediaCount:        o.Account.MediaCount,
			ProfilePictureURL: o.Account.ProfilePictureURL,
			TokenStatus:       o.Account.TokenStatus,
		},
		Summary: summaryResp{
			MediaCount:        o.Summary.MediaCount,
			TotalViews:        o.Summary.TotalViews,
			TotalReach:        o.Summary.TotalReach,
			TotalEngagement:   o.Summary.TotalEngagement,
			AvgEngagementRate: o.Summary.AvgEngagementRate,
		},
		TopContent:   newMediaInsightResps(o.TopContent),
		PartialCount: o.PartialCount,
		CacheHit:     o.CacheHit,
	}
	if o.SyncedAt != nil {
		formatted := o.SyncedAt.Format(time.RFC3339)
		resp.SyncedAt = &formatted
	}
	return resp
}

func (h *handler) newMediaListResp(o insights.GetMediaListOutput) mediaListResp {
	return mediaListResp{
		Items:     newMediaInsightResps(o.Items),
		Paginator: o.Paginator.ToResponse(),
		CacheHit:  o.CacheHit,
	}
}

func newMediaInsightResps(items []insights.MediaInsight) []mediaInsightResp {
	resps := make([]mediaInsightResp, 0, len(items))
	for _, item := range items {
		resps = append(resps, newMediaInsightResp(item))
	}
	return resps
}

func newMediaInsightResp(item insights.MediaInsight) mediaInsightResp {
	m := item.Media
	s := item.Snapshot

	return mediaInsightResp{
		Media: mediaResp{
			ID:            m.ID,
			Kind:          m.Kind,
			IsReel:        m.IsReel,
			Caption:       m.Caption,
			Permalink:     m.Permalink,
			MediaURL:      m.MediaURL,
			LikeCount:     m.LikeCount,
			CommentsCount: m.CommentsCount,
			PublishedAt:   m.Timestamp.Format(time.RFC3339),
		},
		Metrics: metricsResp{
			Views:             s.Views,
			Reach:             s.Reach,
			Saves:             s.Saves,
			Shares:            s.Shares,
			TotalInteractions: s.TotalInteractions,

			Engagement:               s.Engagement,
			Score:                    s.Score,
			EngagementRate:           s.EngagementRate,
			ReachRate:                s.ReachRate,
			ViewsRate:                s.ViewsRate,
			InteractionsPer1000Reach: s.InteractionsPer1000Reach,

			IsPartial:      s.IsPartial,
			MissingMetrics: s.MissingMetrics,
			HasInsights:    s.HasInsights,

			Raw: s.Raw,
		},
	}
}
