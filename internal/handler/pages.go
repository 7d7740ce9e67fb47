package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/poller"
	"github.com/soc-lens/backend/internal/service"
	"github.com/soc-lens/backend/internal/view"
)

// PageHandler - 서버 렌더링 페이지 (대시보드, 조사 페이지)
type PageHandler struct {
	poll *poller.Poller
	inv  *service.InvestigationService
}

func NewPageHandler(poll *poller.Poller, inv *service.InvestigationService) *PageHandler {
	return &PageHandler{poll: poll, inv: inv}
}

// dashboardView - 대시보드 템플릿 데이터
type dashboardView struct {
	StatusClass  string
	StatusText   string
	Stamp        uint64
	Counts       view.SeverityCounts
	Columns      view.AlertColumns
	SeverityData template.JS
	TopData      template.JS
	TimeData     template.JS
}

// Dashboard - GET /
// 렌더 직전에 최신 스냅샷을 읽는다. 이전에 잡아둔 스냅샷 재사용 금지 -
// 겹친 폴링 틱이 있어도 마지막 전체 렌더가 이기게 하기 위함.
func (h *PageHandler) Dashboard(c *gin.Context) {
	snap := h.poll.Latest()

	var alerts []model.Alert
	top5 := []model.TopAlertEntry{}
	var series model.TimeSeries
	if snap.Data != nil {
		alerts = snap.Data.Alerts
		top5 = snap.Data.Top5Alerts
		series = snap.Data.TimeSeries
	}

	counts := view.CountBySeverity(alerts)
	columns := view.BuildColumns(alerts, func(a model.Alert) string {
		param, err := EncodeAlertParam(a)
		if err != nil {
			log.Printf("Failed to encode alert for card link: %v", err)
			return ""
		}
		return param
	})

	statusClass, statusText := statusIndicator(snap.Status)

	c.HTML(http.StatusOK, "dashboard.html", dashboardView{
		StatusClass:  statusClass,
		StatusText:   statusText,
		Stamp:        snap.Stamp,
		Counts:       counts,
		Columns:      columns,
		SeverityData: toJS(view.SeverityChart(counts)),
		TopData:      toJS(view.TopAlertsChart(top5)),
		TimeData:     toJS(view.TimeSeriesChart(series)),
	})
}

func statusIndicator(status poller.Status) (class, text string) {
	switch status {
	case poller.StatusLive:
		return "live", "Live Monitoring Active"
	case poller.StatusError:
		return "error", "Connection Lost"
	default:
		return "", "Connecting..."
	}
}

// investigationView - 조사 페이지 템플릿 데이터
// Error가 비어 있지 않으면 로딩 영역을 그 한 줄로 대체하고 끝 (재시도 없음)
type investigationView struct {
	Error    string
	Title    string
	Subtitle string
	Session  sessionView
	Intel    view.ThreatIntelView
	Analysis template.HTML
	Playbook template.HTML
	LogsText string

	// 시각화 영역. 실패하면 null이고 나머지 영역은 그대로 렌더링됨
	GraphData     template.JS
	TimelineData  template.JS
	TimelineEmpty string

	PDF pdfOptions
}

// sessionView - 조사 세션 하나에 스코프된 챗 컨텍스트
// 전역 상태 대신 페이지에 명시적으로 심어서 챗 위젯이 요청 본문에 싣는다
type sessionView struct {
	ID           string
	AlertContext string
	LogsContext  string
}

// pdfOptions - 페이지 PDF 내보내기 고정 옵션
type pdfOptions struct {
	Margin      float64
	Format      string
	Orientation string
	Filename    string
}

var reportPDF = pdfOptions{
	Margin:      0.2,
	Format:      "letter",
	Orientation: "portrait",
	Filename:    "Investigation_Report.pdf",
}

// Investigation - GET /investigation?alert=<base64 JSON>
func (h *PageHandler) Investigation(c *gin.Context) {
	param := c.Query("alert")
	if param == "" {
		c.HTML(http.StatusOK, "investigation.html", investigationView{
			Error: "Error: No alert data found in URL.",
		})
		return
	}

	alert, err := DecodeAlertParam(param)
	if err != nil {
		log.Printf("Failed to decode alert param: %v", err)
		c.HTML(http.StatusOK, "investigation.html", investigationView{
			Error: "Error decoding alert data.",
		})
		return
	}

	fields := view.CardFields(alert)
	bundle, err := h.inv.Investigate(c.Request.Context(), alert)
	if err != nil {
		c.HTML(http.StatusOK, "investigation.html", investigationView{
			Error: fmt.Sprintf("Analysis Failed: %s", err.Error()),
		})
		return
	}

	logsText := "No related logs found."
	if len(bundle.RelatedLogs) > 0 {
		logsText = strings.Join(bundle.RelatedLogs, "\n")
	}

	alertJSON, _ := json.Marshal(alert)

	page := investigationView{
		Title:    alert.Rule.Description,
		Subtitle: fmt.Sprintf("Target User: %s | Attacker IP: %s", fields.User, fields.IP),
		Session: sessionView{
			ID:           uuid.NewString(),
			AlertContext: string(alertJSON),
			LogsContext:  logsText,
		},
		Intel:    view.BuildThreatIntel(bundle.ThreatIntel),
		Analysis: view.FormatAnalysis(bundle.Analysis),
		Playbook: view.FormatPlaybook(bundle.Playbook),
		LogsText: logsText,
		PDF:      reportPDF,
	}
	page.GraphData, page.TimelineData, page.TimelineEmpty = buildVisuals(alert, bundle.RelatedLogs)

	c.HTML(http.StatusOK, "investigation.html", page)
}

// buildVisuals - 그래프/타임라인 데이터 생성을 격리
// 여기가 실패해도 다른 네 영역은 렌더링을 막지 않는다
func buildVisuals(alert model.Alert, logs []string) (graph, timeline template.JS, empty string) {
	graph, timeline = template.JS("null"), template.JS("null")
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Visualization error: %v", r)
		}
	}()

	graph = toJS(view.BuildNetworkGraph(alert))

	events := view.ExtractTimeline(logs)
	empty = view.TimelineEmptyMessage(logs, events)
	if len(events) > 0 {
		timeline = toJS(events)
	}
	return graph, timeline, empty
}

func toJS(val any) template.JS {
	raw, err := json.Marshal(val)
	if err != nil {
		return template.JS("null")
	}
	return template.JS(raw)
}
