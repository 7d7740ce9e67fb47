package service

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"strings"

	"github.com/soc-lens/backend/internal/metrics"
	"github.com/soc-lens/backend/internal/model"
	"github.com/soc-lens/backend/internal/prompt"
)

// 표준 필드에 IP가 없을 때 알림 전체에서 찾는 폴백 패턴
var ipPattern = regexp.MustCompile(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)

const (
	noRelatedLogs = "No related logs found."
	aiUnavailable = "AI client not configured."
)

// logSearcher - 원시 로그 검색 인터페이스
type logSearcher interface {
	SearchLogs(keys []string) []string
}

// intelClient - 위협 인텔 조회 인터페이스
type intelClient interface {
	IsConfigured() bool
	Check(ctx context.Context, ip string) (*model.ThreatIntel, error)
}

// IntelCache - 선택적 조회 캐시 (nil이면 매번 직접 조회)
// main에서 nil로 둘 수 있어야 해서 export
type IntelCache interface {
	Get(ctx context.Context, ip string) (*model.ThreatIntel, bool)
	Set(ctx context.Context, ip string, intel *model.ThreatIntel)
}

// AIProvider - 텍스트 생성 인터페이스 (미설정이면 nil)
type AIProvider interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// InvestigationService - 알림 하나에 대한 조사 번들 조립
type InvestigationService struct {
	logs  logSearcher
	intel intelClient
	cache IntelCache
	ai    AIProvider
}

// NewInvestigationService - cache와 ai는 nil 허용 (비활성/미설정)
func NewInvestigationService(logs logSearcher, intel intelClient, cache IntelCache, ai AIProvider) *InvestigationService {
	return &InvestigationService{logs: logs, intel: intel, cache: cache, ai: ai}
}

// Investigate - 관련 로그 / 위협 인텔 / AI 분석 / 플레이북을 모아 번들 반환
// 인텔 부재와 AI 미설정은 에러가 아니라 번들 내용으로 표현된다.
func (s *InvestigationService) Investigate(ctx context.Context, alert model.Alert) (*model.InvestigationBundle, error) {
	alertJSON, err := json.Marshal(alert)
	if err != nil {
		return nil, err
	}

	ip, user := searchKeys(alert, alertJSON)

	var keys []string
	if ip != "" {
		keys = append(keys, ip)
	}
	if user != "" {
		keys = append(keys, user)
	}
	relatedLogs := s.logs.SearchLogs(keys)

	intel := s.lookupIntel(ctx, ip)

	logsText := noRelatedLogs
	if len(relatedLogs) > 0 {
		logsText = strings.Join(relatedLogs, "\n")
	}

	analysis := s.generate(ctx, prompt.AnalysisSystem,
		prompt.AnalysisBody(string(alertJSON), logsText, intel))
	playbook := s.generate(ctx, prompt.PlaybookSystem,
		prompt.PlaybookBody(string(alertJSON), logsText))

	if relatedLogs == nil {
		relatedLogs = []string{}
	}
	return &model.InvestigationBundle{
		ThreatIntel: intel,
		Analysis:    analysis,
		Playbook:    playbook,
		RelatedLogs: relatedLogs,
	}, nil
}

// searchKeys - 로그 검색에 쓸 IP와 사용자명 추출
// IP는 표준 필드 우선, 없으면 직렬화된 알림 전체에서 IPv4 패턴 검색
func searchKeys(alert model.Alert, alertJSON []byte) (ip, user string) {
	if alert.Data != nil && alert.Data.Win != nil && alert.Data.Win.EventData != nil {
		ip = alert.Data.Win.EventData.IpAddress
		user = alert.Data.Win.EventData.TargetUserName
	}
	if ip == "" {
		ip = ipPattern.FindString(string(alertJSON))
	}
	return ip, user
}

// lookupIntel - 캐시 -> API 순서로 조회. 실패는 인텔 없음으로 처리
func (s *InvestigationService) lookupIntel(ctx context.Context, ip string) *model.ThreatIntel {
	if ip == "" || s.intel == nil || !s.intel.IsConfigured() {
		return nil
	}

	if s.cache != nil {
		if intel, ok := s.cache.Get(ctx, ip); ok {
			metrics.IntelLookupsTotal.WithLabelValues("cache").Inc()
			return intel
		}
	}

	intel, err := s.intel.Check(ctx, ip)
	if err != nil {
		log.Printf("Threat intel lookup failed for %s: %v", ip, err)
		metrics.IntelLookupsTotal.WithLabelValues("miss").Inc()
		return nil
	}
	metrics.IntelLookupsTotal.WithLabelValues("api").Inc()

	if s.cache != nil {
		s.cache.Set(ctx, ip, intel)
	}
	return intel
}

// generate - AI 호출. 미설정이면 고정 문구, 에러면 에러 문자열이 본문이 됨
func (s *InvestigationService) generate(ctx context.Context, systemPrompt, userPrompt string) string {
	if s.ai == nil {
		return aiUnavailable
	}
	text, err := s.ai.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("AI generation failed: %v", err)
		return err.Error()
	}
	return text
}
