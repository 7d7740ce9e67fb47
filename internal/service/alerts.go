package service

import (
	"sort"
	"time"

	"github.com/soc-lens/backend/internal/model"
)

// alertFeed - 피드 인터페이스
type alertFeed interface {
	ReadAlerts() ([]model.Alert, error)
}

// AlertsService - 대시보드 폴링 응답 생성
// 알림 목록에 Top 5 집계와 시간당 시계열을 붙여 반환한다.
// 매 호출마다 피드에서 새로 계산하며 아무것도 보관하지 않음.
type AlertsService struct {
	feed alertFeed
}

func NewAlertsService(feed alertFeed) *AlertsService {
	return &AlertsService{feed: feed}
}

const topAlertsLimit = 5

func (s *AlertsService) Fetch() (*model.AlertsResponse, error) {
	alerts, err := s.feed.ReadAlerts()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var order []string // 동률일 때 첫 등장 순서 유지
	hourly := make(map[string]int)

	for _, alert := range alerts {
		desc := alert.Rule.Description
		if desc == "" {
			desc = "Unknown"
		}
		if _, seen := counts[desc]; !seen {
			order = append(order, desc)
		}
		counts[desc]++

		if hour, ok := hourBucket(alert.Timestamp); ok {
			hourly[hour]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topAlertsLimit {
		order = order[:topAlertsLimit]
	}
	top5 := make([]model.TopAlertEntry, 0, len(order))
	for _, desc := range order {
		top5 = append(top5, model.TopAlertEntry{Description: desc, Count: counts[desc]})
	}

	hours := make([]string, 0, len(hourly))
	for hour := range hourly {
		hours = append(hours, hour)
	}
	sort.Strings(hours) // 라벨 형식상 사전순 == 시간순
	series := model.TimeSeries{Labels: []string{}, Data: []int{}}
	for _, hour := range hours {
		series.Labels = append(series.Labels, hour)
		series.Data = append(series.Data, hourly[hour])
	}

	return &model.AlertsResponse{
		Alerts:     alerts,
		Top5Alerts: top5,
		TimeSeries: series,
	}, nil
}

// 피드 타임스탬프 후보 레이아웃. 파싱 실패한 알림은 시계열에서만 빠진다.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999-0700",
	"2006-01-02 15:04:05",
}

func hourBucket(ts string) (string, bool) {
	if ts == "" {
		return "", false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return parsed.Format("2006-01-02 15:00"), true
		}
	}
	return "", false
}
