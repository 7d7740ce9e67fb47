package view

import (
	"strings"
	"testing"

	"github.com/soc-lens/backend/internal/model"
)

func alertWith(category, id, desc string) model.Alert {
	return model.Alert{
		Rule:     model.Rule{ID: id, Description: desc},
		Category: category,
	}
}

func TestCountBySeverity(t *testing.T) {
	alerts := []model.Alert{
		alertWith(model.CategoryHigh, "1", "a"),
		alertWith(model.CategoryMedium, "2", "b"),
		alertWith(model.CategoryMedium, "3", "c"),
		alertWith(model.CategoryLow, "4", "d"),
		alertWith("Critical", "5", "e"), // 인식 안 되는 카테고리
	}

	counts := CountBySeverity(alerts)
	if counts.High != 1 || counts.Medium != 2 || counts.Low != 1 || counts.Unknown != 1 {
		t.Fatalf("counts = %+v", counts)
	}

	// 완전 분할: 세 버킷 + 버린 것 == 입력 길이
	if counts.High+counts.Medium+counts.Low+counts.Unknown != len(alerts) {
		t.Fatalf("severity counts must partition the input")
	}
}

func TestCountBySeverityEmpty(t *testing.T) {
	counts := CountBySeverity(nil)
	if counts != (SeverityCounts{}) {
		t.Fatalf("expected all zero counters, got %+v", counts)
	}
}

func TestBuildColumns(t *testing.T) {
	alerts := []model.Alert{
		{
			Rule:     model.Rule{ID: "100", Description: "Brute Force"},
			Category: model.CategoryHigh,
			Data: &model.Data{Win: &model.Win{EventData: &model.EventData{
				TargetUserName: "bob",
				IpAddress:      "1.2.3.4",
			}}},
		},
		alertWith(model.CategoryHigh, "101", "Second High"),
		alertWith("Weird", "102", "Dropped"),
	}

	cols := BuildColumns(alerts, nil)
	if len(cols.High) != 2 || len(cols.Medium) != 0 || len(cols.Low) != 0 {
		t.Fatalf("columns = %d/%d/%d", len(cols.High), len(cols.Medium), len(cols.Low))
	}

	// 최신(입력 마지막)이 먼저
	if cols.High[0].Description != "Second High" {
		t.Fatalf("newest alert must come first, got %q", cols.High[0].Description)
	}

	card := cols.High[1]
	if card.Description != "Brute Force" {
		t.Fatalf("description = %q", card.Description)
	}
	if card.Subtext != "User: bob, IP: 1.2.3.4" {
		t.Fatalf("subtext = %q", card.Subtext)
	}
	if card.ID != "100" {
		t.Fatalf("card id = %q", card.ID)
	}
}

func TestBuildColumnsEncodesPayload(t *testing.T) {
	alerts := []model.Alert{alertWith(model.CategoryLow, "7", "x")}
	cols := BuildColumns(alerts, func(a model.Alert) string { return "payload-" + a.Rule.ID })
	if cols.Low[0].Payload != "payload-7" {
		t.Fatalf("payload = %q", cols.Low[0].Payload)
	}
}

func TestSeverityChart(t *testing.T) {
	chart := SeverityChart(SeverityCounts{High: 3, Medium: 2, Low: 1})
	if len(chart.Labels) != 3 || len(chart.Values) != 3 || len(chart.Colors) != 3 {
		t.Fatalf("chart arrays must be parallel: %+v", chart)
	}
	if chart.Values[0] != 3 || chart.Values[1] != 2 || chart.Values[2] != 1 {
		t.Fatalf("values = %v", chart.Values)
	}
}

func TestTopAlertsChart(t *testing.T) {
	long := strings.Repeat("z", 40)
	chart := TopAlertsChart([]model.TopAlertEntry{
		{Description: "Short", Count: 9},
		{Description: long, Count: 4},
	})

	if chart.Labels[0] != "Short" {
		t.Fatalf("short label must pass through, got %q", chart.Labels[0])
	}
	if want := strings.Repeat("z", 30) + "..."; chart.Labels[1] != want {
		t.Fatalf("long label = %q, want %q", chart.Labels[1], want)
	}
	if chart.Values[0] != 9 || chart.Values[1] != 4 {
		t.Fatalf("values = %v", chart.Values)
	}
}

func TestTimeSeriesChart(t *testing.T) {
	chart := TimeSeriesChart(model.TimeSeries{
		Labels: []string{"2024-01-01 10:00", "2024-01-01 11:00"},
		Data:   []int{2, 5},
	})
	if len(chart.Labels) != 2 || chart.Values[1] != 5 {
		t.Fatalf("chart = %+v", chart)
	}
}
