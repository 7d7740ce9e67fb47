package view

import "github.com/soc-lens/backend/internal/model"

// ThreatIntelView - 위협 인텔 패널 표시용 레코드
// Found가 false면 패널은 "인텔 없음" 상태를 렌더링
type ThreatIntelView struct {
	Found      bool
	Score      int
	ScoreClass string
	ISP        string
	Country    string
	Domain     string
	Usage      string
}

// BuildThreatIntel - 점수 구간에 따라 색상 클래스 결정 (>20 warn, >80 risk)
// 빠진 필드는 전부 "N/A"
func BuildThreatIntel(ti *model.ThreatIntel) ThreatIntelView {
	if ti == nil {
		return ThreatIntelView{}
	}

	class := "ti-safe"
	if ti.AbuseConfidenceScore > 20 {
		class = "ti-warn"
	}
	if ti.AbuseConfidenceScore > 80 {
		class = "ti-risk"
	}

	return ThreatIntelView{
		Found:      true,
		Score:      ti.AbuseConfidenceScore,
		ScoreClass: class,
		ISP:        orNA(ti.ISP),
		Country:    orNA(ti.CountryCode),
		Domain:     orNA(ti.Domain),
		Usage:      orNA(ti.UsageType),
	}
}

func orNA(val string) string {
	if val == "" {
		return "N/A"
	}
	return val
}
