package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/soc-lens/backend/internal/model"
)

// 대시보드 -> 조사 페이지 네비게이션 계약: 알림 JSON을 표준 base64로 감싸
// `alert` 쿼리 파라미터 하나에 싣는다. 생산자/소비자가 같은 시스템 안에
// 있으므로 URL-safe 변형으로 바꾸지 않고 표준 인코딩을 유지한다.

// EncodeAlertParam - 알림을 URL 파라미터 값으로 인코딩
func EncodeAlertParam(alert model.Alert) (string, error) {
	raw, err := json.Marshal(alert)
	if err != nil {
		return "", fmt.Errorf("failed to marshal alert: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeAlertParam - URL 파라미터 값을 알림으로 복원
func DecodeAlertParam(param string) (model.Alert, error) {
	var alert model.Alert
	raw, err := base64.StdEncoding.DecodeString(param)
	if err != nil {
		return alert, fmt.Errorf("failed to decode alert param: %w", err)
	}
	if err := json.Unmarshal(raw, &alert); err != nil {
		return alert, fmt.Errorf("failed to parse alert param: %w", err)
	}
	return alert, nil
}
