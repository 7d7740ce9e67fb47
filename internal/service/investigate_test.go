package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/soc-lens/backend/internal/model"
)

type fakeLogs struct {
	gotKeys []string
	lines   []string
}

func (f *fakeLogs) SearchLogs(keys []string) []string {
	f.gotKeys = keys
	return f.lines
}

type fakeIntel struct {
	configured bool
	intel      *model.ThreatIntel
	err        error
	calls      int
}

func (f *fakeIntel) IsConfigured() bool { return f.configured }

func (f *fakeIntel) Check(ctx context.Context, ip string) (*model.ThreatIntel, error) {
	f.calls++
	return f.intel, f.err
}

type fakeAI struct {
	lastUser string
	answer   string
	err      error
}

func (f *fakeAI) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.lastUser = userPrompt
	return f.answer, f.err
}

type fakeCache struct {
	store map[string]*model.ThreatIntel
	sets  int
}

func (f *fakeCache) Get(ctx context.Context, ip string) (*model.ThreatIntel, bool) {
	intel, ok := f.store[ip]
	return intel, ok
}

func (f *fakeCache) Set(ctx context.Context, ip string, intel *model.ThreatIntel) {
	f.sets++
	f.store[ip] = intel
}

func testAlert() model.Alert {
	return model.Alert{
		Rule: model.Rule{ID: "100", Description: "Brute Force"},
		Data: &model.Data{Win: &model.Win{EventData: &model.EventData{
			TargetUserName: "bob",
			IpAddress:      "1.2.3.4",
		}}},
	}
}

func TestInvestigate(t *testing.T) {
	logs := &fakeLogs{lines: []string{"2024-01-01 10:00:00 bob failed login"}}
	intel := &fakeIntel{configured: true, intel: &model.ThreatIntel{AbuseConfidenceScore: 90}}
	ai := &fakeAI{answer: "analysis text"}

	svc := NewInvestigationService(logs, intel, nil, ai)
	bundle, err := svc.Investigate(context.Background(), testAlert())
	if err != nil {
		t.Fatalf("Investigate() error: %v", err)
	}

	if len(logs.gotKeys) != 2 || logs.gotKeys[0] != "1.2.3.4" || logs.gotKeys[1] != "bob" {
		t.Fatalf("search keys = %v", logs.gotKeys)
	}
	if bundle.ThreatIntel == nil || bundle.ThreatIntel.AbuseConfidenceScore != 90 {
		t.Fatalf("threat intel = %+v", bundle.ThreatIntel)
	}
	if bundle.Analysis != "analysis text" || bundle.Playbook != "analysis text" {
		t.Fatalf("AI text missing: %+v", bundle)
	}
	if len(bundle.RelatedLogs) != 1 {
		t.Fatalf("related logs = %v", bundle.RelatedLogs)
	}
	if !strings.Contains(ai.lastUser, "bob failed login") {
		t.Fatalf("prompt must carry the related logs, got %q", ai.lastUser)
	}
}

// 표준 필드에 IP가 없으면 직렬화된 알림에서 IPv4 패턴을 찾는다
func TestInvestigateIPFallback(t *testing.T) {
	alert := model.Alert{
		Rule:      model.Rule{ID: "200", Description: "Odd traffic from 10.9.8.7 observed"},
		Timestamp: "2024-01-01T00:00:00Z",
	}
	logs := &fakeLogs{}
	svc := NewInvestigationService(logs, &fakeIntel{}, nil, nil)
	if _, err := svc.Investigate(context.Background(), alert); err != nil {
		t.Fatal(err)
	}
	if len(logs.gotKeys) != 1 || logs.gotKeys[0] != "10.9.8.7" {
		t.Fatalf("fallback keys = %v", logs.gotKeys)
	}
}

// 인텔 실패/미설정은 에러가 아니라 인텔 없는 번들
func TestInvestigateIntelDegrades(t *testing.T) {
	tests := []struct {
		name  string
		intel *fakeIntel
	}{
		{name: "unconfigured", intel: &fakeIntel{configured: false}},
		{name: "lookup-error", intel: &fakeIntel{configured: true, err: errors.New("down")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewInvestigationService(&fakeLogs{}, tt.intel, nil, nil)
			bundle, err := svc.Investigate(context.Background(), testAlert())
			if err != nil {
				t.Fatalf("intel absence must not fail the bundle: %v", err)
			}
			if bundle.ThreatIntel != nil {
				t.Fatalf("expected no intel, got %+v", bundle.ThreatIntel)
			}
		})
	}
}

func TestInvestigateIntelCache(t *testing.T) {
	intel := &fakeIntel{configured: true, intel: &model.ThreatIntel{AbuseConfidenceScore: 30}}
	cached := &fakeCache{store: map[string]*model.ThreatIntel{}}
	svc := NewInvestigationService(&fakeLogs{}, intel, cached, nil)

	if _, err := svc.Investigate(context.Background(), testAlert()); err != nil {
		t.Fatal(err)
	}
	if intel.calls != 1 || cached.sets != 1 {
		t.Fatalf("first lookup must hit the API and fill the cache (calls=%d sets=%d)", intel.calls, cached.sets)
	}

	if _, err := svc.Investigate(context.Background(), testAlert()); err != nil {
		t.Fatal(err)
	}
	if intel.calls != 1 {
		t.Fatalf("second lookup must be served from cache, calls=%d", intel.calls)
	}
}

func TestInvestigateWithoutAI(t *testing.T) {
	svc := NewInvestigationService(&fakeLogs{}, &fakeIntel{}, nil, nil)
	bundle, err := svc.Investigate(context.Background(), testAlert())
	if err != nil {
		t.Fatal(err)
	}
	if bundle.Analysis != aiUnavailable || bundle.Playbook != aiUnavailable {
		t.Fatalf("expected fixed fallback text, got %+v", bundle)
	}
}

// AI 에러는 에러 문자열이 본문이 된다
func TestInvestigateAIError(t *testing.T) {
	ai := &fakeAI{err: errors.New("model overloaded")}
	svc := NewInvestigationService(&fakeLogs{}, &fakeIntel{}, nil, ai)
	bundle, err := svc.Investigate(context.Background(), testAlert())
	if err != nil {
		t.Fatal(err)
	}
	if bundle.Analysis != "model overloaded" {
		t.Fatalf("analysis = %q", bundle.Analysis)
	}
}
