package view

import (
	"fmt"

	"github.com/soc-lens/backend/internal/model"
)

// 폴링마다 차트 데이터 전체를 처음부터 다시 만든다. 증분 갱신 없음 -
// 늦게 도착한 폴링 결과가 섞여도 마지막 전체 렌더가 이기면 됨.

// SeverityCounts - 알림 목록의 심각도 분할
// High+Medium+Low+Unknown == 입력 길이 (완전 분할)
type SeverityCounts struct {
	High    int
	Medium  int
	Low     int
	Unknown int
}

// CountBySeverity - 한 번의 스캔으로 카테고리별 카운터 증가
// 인식 못 하는 카테고리는 어느 버킷에도 넣지 않고 조용히 버림
func CountBySeverity(alerts []model.Alert) SeverityCounts {
	var counts SeverityCounts
	for _, a := range alerts {
		switch a.Category {
		case model.CategoryHigh:
			counts.High++
		case model.CategoryMedium:
			counts.Medium++
		case model.CategoryLow:
			counts.Low++
		default:
			counts.Unknown++
		}
	}
	return counts
}

// AlertCard - 심각도 컬럼에 들어가는 카드 하나
type AlertCard struct {
	ID          string // rule.id + timestamp 조합으로 카드 구분
	Category    string
	Description string
	Subtext     string
	Payload     string // 조사 페이지로 넘길 인코딩된 알림
}

// AlertColumns - 세 심각도 컬럼, 각각 최신이 먼저
type AlertColumns struct {
	High   []AlertCard
	Medium []AlertCard
	Low    []AlertCard
}

// BuildColumns - 알림 목록을 컬럼별 카드로 변환
// encode는 카드의 조사 링크에 넣을 페이로드 생성자 (실패 시 빈 문자열 허용)
func BuildColumns(alerts []model.Alert, encode func(model.Alert) string) AlertColumns {
	var cols AlertColumns
	// 최신 알림이 위로 오도록 역순 순회
	for i := len(alerts) - 1; i >= 0; i-- {
		a := alerts[i]
		fields := CardFields(a)
		card := AlertCard{
			ID:          a.Rule.ID + a.Timestamp,
			Category:    a.Category,
			Description: fields.RuleDescription,
			Subtext:     fmt.Sprintf("User: %s, IP: %s", fields.User, fields.IP),
		}
		if encode != nil {
			card.Payload = encode(a)
		}
		switch a.Category {
		case model.CategoryHigh:
			cols.High = append(cols.High, card)
		case model.CategoryMedium:
			cols.Medium = append(cols.Medium, card)
		case model.CategoryLow:
			cols.Low = append(cols.Low, card)
		}
	}
	return cols
}

// ChartData - 차트 라이브러리에 넘기는 (라벨, 값, 색) 데이터 계약
// 도넛/바/라인 공용
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Colors []string `json:"colors,omitempty"`
}

// 심각도 도넛 차트 색상 (High / Medium / Low 순)
var severityColors = []string{"#e74c3c", "#f39c12", "#2ecc71"}

// Top 5 바 차트 색상
var topAlertColors = []string{
	"rgba(231, 76, 60, 0.7)",
	"rgba(243, 156, 18, 0.7)",
	"rgba(52, 152, 219, 0.7)",
	"rgba(155, 89, 182, 0.7)",
	"rgba(46, 204, 113, 0.7)",
}

// SeverityChart - KPI 카운터에서 도넛 차트 데이터 생성
func SeverityChart(counts SeverityCounts) ChartData {
	return ChartData{
		Labels: []string{model.CategoryHigh, model.CategoryMedium, model.CategoryLow},
		Values: []int{counts.High, counts.Medium, counts.Low},
		Colors: severityColors,
	}
}

// topAlertLabelMax - 바 차트 라벨 길이 제한
const topAlertLabelMax = 30

// TopAlertsChart - 백엔드가 준 (설명, 횟수) 쌍을 바 차트 데이터로 소비
// 긴 라벨은 30자에서 잘라 "..." 추가
func TopAlertsChart(entries []model.TopAlertEntry) ChartData {
	chart := ChartData{
		Labels: make([]string, 0, len(entries)),
		Values: make([]int, 0, len(entries)),
		Colors: topAlertColors,
	}
	for _, e := range entries {
		label := e.Description
		if runes := []rune(label); len(runes) > topAlertLabelMax {
			label = string(runes[:topAlertLabelMax]) + "..."
		}
		chart.Labels = append(chart.Labels, label)
		chart.Values = append(chart.Values, e.Count)
	}
	return chart
}

// TimeSeriesChart - {labels, data} 병렬 배열을 라인 차트 데이터로 소비
func TimeSeriesChart(ts model.TimeSeries) ChartData {
	return ChartData{Labels: ts.Labels, Values: ts.Data}
}
