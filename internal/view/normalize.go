// Package view turns raw alert/investigation payloads into the flat view
// models the page templates consume. All transforms are pure and total:
// any nesting level of the payload may be absent without causing a panic.
package view

import "github.com/soc-lens/backend/internal/model"

// AlertFields - 알림에서 추출한 표시용 평면 레코드
type AlertFields struct {
	RuleDescription string
	User            string
	IP              string
	Computer        string
}

// 대시보드 카드용 기본값
const fieldMissing = "N/A"

// 조사 그래프용 기본값 (노드 라벨이 비면 그래프가 깨지므로 문맥에 맞는 이름 사용)
const (
	graphMissingUser     = "Unknown User"
	graphMissingIP       = "External IP"
	graphMissingComputer = "Server"
)

// CardFields - 대시보드 카드 문맥의 정규화
// 빠진 필드는 전부 "N/A"로 대체
func CardFields(a model.Alert) AlertFields {
	return normalize(a, fieldMissing, fieldMissing, fieldMissing)
}

// GraphFields - 조사 그래프 문맥의 정규화
func GraphFields(a model.Alert) AlertFields {
	return normalize(a, graphMissingUser, graphMissingIP, graphMissingComputer)
}

func normalize(a model.Alert, missingUser, missingIP, missingComputer string) AlertFields {
	fields := AlertFields{
		RuleDescription: a.Rule.Description,
		User:            missingUser,
		IP:              missingIP,
		Computer:        missingComputer,
	}

	if ev := eventData(a); ev != nil {
		if ev.TargetUserName != "" {
			fields.User = ev.TargetUserName
		}
		if ev.IpAddress != "" {
			fields.IP = ev.IpAddress
		}
	}
	if a.Agent != nil && a.Agent.Name != "" {
		fields.Computer = a.Agent.Name
	}

	return fields
}

// eventData - data.win.eventdata까지 안전하게 내려가는 헬퍼
// 어느 레벨이든 없으면 nil 반환
func eventData(a model.Alert) *model.EventData {
	if a.Data == nil || a.Data.Win == nil {
		return nil
	}
	return a.Data.Win.EventData
}
