// 알림 피드 / 원시 로그 파일 접근
//
// 환경변수:
//   - ALERTS_FILE: newline-delimited JSON 알림 피드 (기본: alerts.txt)
//   - LOGS_FILE: 원시 로그 파일 (기본: logs.txt)
//
// 피드는 폴링마다 통째로 다시 읽는다. 이력 집계나 저장은 하지 않음.

package source

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/soc-lens/backend/internal/config"
	"github.com/soc-lens/backend/internal/model"
)

type Feed struct {
	alertsFile string
	logsFile   string
}

func NewFeed(cfg config.FeedConfig) *Feed {
	return &Feed{
		alertsFile: cfg.AlertsFile,
		logsFile:   cfg.LogsFile,
	}
}

// ReadAlerts - 피드 파일을 읽어 알림 목록 반환
// 읽으면서 rule.level로 심각도 카테고리를 부여 (>=10 High, >=7 Medium, 나머지 Low)
func (f *Feed) ReadAlerts() ([]model.Alert, error) {
	file, err := os.Open(f.alertsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open alert feed: %w", err)
	}
	defer file.Close()

	var alerts []model.Alert
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var alert model.Alert
		if err := json.Unmarshal(line, &alert); err != nil {
			return nil, fmt.Errorf("failed to parse alert at line %d: %w", lineNo, err)
		}

		alert.Category = Classify(alert.Rule.Level)
		alerts = append(alerts, alert)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alert feed: %w", err)
	}

	return alerts, nil
}

// Classify - 룰 레벨을 심각도 카테고리로 변환
func Classify(level int) string {
	switch {
	case level >= 10:
		return model.CategoryHigh
	case level >= 7:
		return model.CategoryMedium
	default:
		return model.CategoryLow
	}
}

// SearchLogs - 키 중 하나라도 포함된 로그 라인 수집
// 로그 파일이 없거나 읽기 실패하면 관련 로그 없음으로 처리 (에러 아님)
func (f *Feed) SearchLogs(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}

	file, err := os.Open(f.logsFile)
	if err != nil {
		return nil
	}
	defer file.Close()

	var matched []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		for _, key := range keys {
			if key != "" && strings.Contains(line, key) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
	}
	return matched
}
