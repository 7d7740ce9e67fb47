// Wazuh 스타일 알림 페이로드 구조체 정의
// handler, service, view 레이어에서 공통으로 사용하기 때문에 model 레이어에 별도로 정의

package model

// Alert - 개별 보안 알림
// rule 외의 중첩 필드는 수집 소스에 따라 어느 레벨에서든 빠질 수 있으므로
// 포인터로 선언하고 접근 측(view.CardFields 등)에서 nil을 허용
type Alert struct {
	Rule  Rule   `json:"rule"`
	Agent *Agent `json:"agent,omitempty"`
	Data  *Data  `json:"data,omitempty"`

	// Timestamp: 카드 식별자 구분용으로만 사용
	Timestamp string `json:"timestamp,omitempty"`

	// Category: 백엔드 분류 결과 (High / Medium / Low)
	// 클라이언트 측은 계산하지 않고 소비만 하며, 그 외 값은 모든 버킷에서 제외
	Category string `json:"category,omitempty"`
}

// Rule - 알림을 발생시킨 탐지 룰
type Rule struct {
	ID          string `json:"id"`
	Level       int    `json:"level,omitempty"`
	Description string `json:"description"`
}

// Agent - 알림이 발생한 호스트
type Agent struct {
	Name string `json:"name"`
}

// Data - 이벤트 원본 데이터 (Windows 이벤트 로그 형태)
type Data struct {
	Win *Win `json:"win,omitempty"`
}

type Win struct {
	EventData *EventData `json:"eventdata,omitempty"`
}

type EventData struct {
	TargetUserName string `json:"TargetUserName,omitempty"`
	IpAddress      string `json:"IpAddress,omitempty"`
}

// 심각도 카테고리 상수 (백엔드가 부여하는 값과 동일)
const (
	CategoryHigh   = "High"
	CategoryMedium = "Medium"
	CategoryLow    = "Low"
)
