package view

import (
	"regexp"
	"strings"
)

// 로그 라인에서 ISO 유사 타임스탬프를 찾는 패턴 (YYYY-MM-DD HH:MM:SS 또는 T 구분)
var timestampRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}`)

// 타임라인 라벨 최대 길이. 잘린 뒤 항상 "..."가 붙는다 (남은 텍스트가 더
// 짧아도 붙음 - 원래 동작 그대로 유지).
const timelineLabelMax = 50

// TimelineEvent - 로그 라인 하나에서 추출한 시점 이벤트
// ID는 입력 인덱스라서 같은 번들을 다시 렌더링해도 변하지 않음
type TimelineEvent struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Start   string `json:"start"`
}

// 타임라인 빈 상태 메시지. 입력이 비었을 때와 타임스탬프를 하나도 못
// 찾았을 때를 구분해서 보여준다.
const (
	TimelineEmptyLogs    = "No log events to visualize."
	TimelineNoTimestamps = "Could not extract timestamps from logs."
)

// ExtractTimeline - 각 라인의 첫 번째(가장 왼쪽) 타임스탬프 매치로 이벤트 생성
// 매치가 없는 라인은 버림 (시점 없는 항목으로 유지하지 않음)
func ExtractTimeline(logs []string) []TimelineEvent {
	var events []TimelineEvent
	for i, line := range logs {
		ts := timestampRe.FindString(line)
		if ts == "" {
			continue
		}

		content := strings.TrimSpace(strings.Replace(line, ts, "", 1))
		if runes := []rune(content); len(runes) > timelineLabelMax {
			content = string(runes[:timelineLabelMax])
		}
		content += "..."

		events = append(events, TimelineEvent{
			ID:      i,
			Content: content,
			Start:   ts, // 매치된 부분 문자열 그대로 (재파싱/재포맷 안 함)
		})
	}
	return events
}

// TimelineEmptyMessage - 이벤트가 없을 때 보여줄 빈 상태 문구 선택
func TimelineEmptyMessage(logs []string, events []TimelineEvent) string {
	if len(events) > 0 {
		return ""
	}
	if len(logs) == 0 {
		return TimelineEmptyLogs
	}
	return TimelineNoTimestamps
}
