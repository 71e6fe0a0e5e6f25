package http

import (
	"time"

	"insight-srv/internal/comparison"
)

type getSummaryReq struct {
	Days int `form:"days"`
}

type windowResp struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type metricChangeResp struct {
	Current       float64 `json:"current"`
	Previous      float64 `json:"previous"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
}

type summaryResp struct {
	CurrentWindow  windowResp `json:"current_window"`
	PreviousWindow windowResp `json:"previous_window"`

	Views      metricChangeResp `json:"views"`
	Reach      metricChangeResp `json:"reach"`
	Engagement metricChangeResp `json:"engagement"`
	MediaCount metricChangeResp `json:"media_count"`
}

func newSummaryResp(o comparison.GetSummaryOutput) summaryResp {
	return summaryResp{
		CurrentWindow:  newWindowResp(o.CurrentWindow),
		PreviousWindow: newWindowResp(o.PreviousWindow),
		Views:          newMetricChangeResp(o.Views),
		Reach:          newMetricChangeResp(o.Reach),
		Engagement:     newMetricChangeResp(o.Engagement),
		MediaCount:     newMetricChangeResp(o.MediaCount),
	}
}

func newWindowResp(w comparison.Window) windowResp {
	return windowResp{
		Start: w.Start.Format(time.RFC3339),
		End:   w.End.Format(time.RFC3339),
	}
}

func newMetricChangeResp(m comparison.MetricChange) metricChangeResp {
	return metricChangeResp{
		Current:       m.Current,
		Previous:      m.Previous,
		Change:        m.Change,
		ChangePercent: m.ChangePercent,
	}
}
