package model

import (
	"encoding/json"
	"fmt"
)

// AlertsResponse - 대시보드 폴링 응답
// 세 가지 독립적인 형태를 한 번에 반환: 알림 목록, Top 5, 시계열
type AlertsResponse struct {
	Alerts     []Alert         `json:"alerts"`
	Top5Alerts []TopAlertEntry `json:"top_5_alerts"`
	TimeSeries TimeSeries      `json:"time_series"`
}

// TopAlertEntry - (룰 설명, 발생 횟수) 쌍
// wire 형식은 2-요소 JSON 배열: ["Brute Force", 12]
type TopAlertEntry struct {
	Description string
	Count       int
}

func (e TopAlertEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Description, e.Count})
}

func (e *TopAlertEntry) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("top alert entry must be a 2-element array: %w", err)
	}
	if err := json.Unmarshal(pair[0], &e.Description); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &e.Count)
}

// TimeSeries - 시간당 알림 수, labels와 data는 병렬 배열
type TimeSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}
