package model

// InvestigationBundle - 단일 알림에 대한 조사 응답
// threat_intel은 IP가 없거나 외부 조회가 실패하면 생략
type InvestigationBundle struct {
	ThreatIntel *ThreatIntel `json:"threat_intel,omitempty"`
	Analysis    string       `json:"analysis"`
	Playbook    string       `json:"playbook"`
	RelatedLogs []string     `json:"related_logs"`
}

// ThreatIntel - AbuseIPDB 조회 결과 중 표시에 쓰는 필드
// 각 필드는 독립적으로 비어 있을 수 있음
type ThreatIntel struct {
	IPAddress            string `json:"ipAddress,omitempty"`
	AbuseConfidenceScore int    `json:"abuseConfidenceScore"`
	ISP                  string `json:"isp,omitempty"`
	CountryCode          string `json:"countryCode,omitempty"`
	Domain               string `json:"domain,omitempty"`
	UsageType            string `json:"usageType,omitempty"`
}
