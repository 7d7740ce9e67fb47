// Package prompt provides AI prompt body rendering.
//
// 지원하는 변수 형식:
//
//	{{alert.json}}, {{logs}}, {{threat.context}},
//	{{question}}, {{alert.context}}, {{logs.context}}
package prompt

import (
	"fmt"
	"strings"

	"github.com/soc-lens/backend/internal/model"
)

// 시스템 프롬프트. 분석은 HTML 조각으로 받아 그대로 주입하므로 포맷을 고정.
const (
	AnalysisSystem = `You are a Tier 3 SOC Analyst. Analyze the alert, logs, and threat intelligence.
Format response in HTML (use <b>, <br>, <ul>).
Requirements:
1. **MITRE Mapping:** Identify Tactic & Technique ID (e.g. T1078).
2. **Summary:** Plain English explanation.
3. **Assessment:** True/False Positive?`

	PlaybookSystem = `You are an Incident Responder. Generate a dynamic playbook in HTML.
Steps: Detection, Containment, Eradication, Recovery.`

	ChatSystem = `You are a Tier 3 Security Analyst Assistant.
Answer the user's question based ONLY on the provided Alert JSON and Logs.
Be concise and technical.`
)

const (
	analysisBody = "Alert: {{alert.json}}\n{{threat.context}}\nLogs: {{logs}}"
	playbookBody = "Alert: {{alert.json}}\nLogs: {{logs}}"
	chatBody     = "**Alert Context:** {{alert.context}}\n**Logs Context:** {{logs.context}}\n**User Question:** {{question}}"
)

// AnalysisBody - 분석 요청 user 프롬프트 렌더링
func AnalysisBody(alertJSON, logs string, intel *model.ThreatIntel) string {
	return render(analysisBody,
		"{{alert.json}}", alertJSON,
		"{{threat.context}}", ThreatContext(intel),
		"{{logs}}", logs,
	)
}

// PlaybookBody - 플레이북 요청 user 프롬프트 렌더링
func PlaybookBody(alertJSON, logs string) string {
	return render(playbookBody,
		"{{alert.json}}", alertJSON,
		"{{logs}}", logs,
	)
}

// ChatBody - 챗 질문 user 프롬프트 렌더링
// 컨텍스트가 nil이면 빈 문자열로 치환
func ChatBody(question string, alertContext, logsContext *string) string {
	return render(chatBody,
		"{{question}}", question,
		"{{alert.context}}", strValue(alertContext),
		"{{logs.context}}", strValue(logsContext),
	)
}

// ThreatContext - 위협 인텔을 프롬프트에 넣을 텍스트 블록으로 변환
func ThreatContext(intel *model.ThreatIntel) string {
	if intel == nil {
		return "No Threat Intelligence data available."
	}
	return fmt.Sprintf(
		"**Threat Intelligence:**\n- IP: %s\n- Score: %d%%\n- Country: %s",
		intel.IPAddress, intel.AbuseConfidenceScore, intel.CountryCode,
	)
}

func render(body string, pairs ...string) string {
	return strings.NewReplacer(pairs...).Replace(body)
}

func strValue(val *string) string {
	if val == nil {
		return ""
	}
	return *val
}
