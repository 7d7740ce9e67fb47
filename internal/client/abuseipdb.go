// 외부 AbuseIPDB API와 통신하는 클라이언트 정의
//
// 환경변수:
//   - ABUSEIPDB_KEY: AbuseIPDB API Key
//   - ABUSEIPDB_URL: API base URL (기본: https://api.abuseipdb.com/api/v2)
//
// 키가 없으면 IsConfigured가 false이고 조회는 건너뜀 - 위협 인텔 부재는
// 에러가 아니라 "인텔 없음" 상태로 렌더링된다.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/soc-lens/backend/internal/config"
	"github.com/soc-lens/backend/internal/model"
)

// IntelClient 구조체 정의
type IntelClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// abuseIPDBEnvelope - check 응답 래퍼
type abuseIPDBEnvelope struct {
	Data model.ThreatIntel `json:"data"`
}

// IntelClient 객체 생성
func NewIntelClient(cfg config.IntelConfig) *IntelClient {
	return &IntelClient{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// API Key 설정 여부 체크
func (c *IntelClient) IsConfigured() bool {
	return c.apiKey != ""
}

// Check - GET /check 로 IP 평판 조회 (조회 기간 90일 고정)
func (c *IntelClient) Check(ctx context.Context, ip string) (*model.ThreatIntel, error) {
	endpoint := fmt.Sprintf("%s/check?%s", c.baseURL, url.Values{
		"ipAddress":    {ip},
		"maxAgeInDays": {"90"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query abuseipdb: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("abuseipdb returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var envelope abuseIPDBEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &envelope.Data, nil
}
