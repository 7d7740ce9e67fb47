package view

import (
	"html/template"
	"regexp"
	"strings"
)

// AI가 돌려주는 자유 텍스트를 페이지에 주입 가능한 마크업 조각으로 변환.
// 변환 순서는 고정: 코드펜스 제거 -> 판정 배지 -> 줄바꿈.
//
// 판정 마커는 상호 배타적으로 취급: TRUE Positive를 먼저 검사하고, 있으면
// FALSE Positive 분기는 타지 않는다 (두 마커가 모두 있어도 TRUE만 치환됨).

const (
	truePositiveBadge  = `<span class="verdict-badge verdict-true">🚨 True Positive</span>`
	falsePositiveBadge = `<span class="verdict-badge verdict-false">✅ False Positive</span>`
)

var (
	mitreRe = regexp.MustCompile(`T\d{4}(\.\d{3})?`)
	boldRe  = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// CleanAIOutput - 공통 정리 패스
// 빈 입력은 빈 조각을 반환하며 에러를 내지 않음
func CleanAIOutput(text string) string {
	if text == "" {
		return ""
	}
	clean := strings.ReplaceAll(text, "```html", "")
	clean = strings.ReplaceAll(clean, "```", "")

	if strings.Contains(clean, "TRUE Positive") {
		clean = strings.ReplaceAll(clean, "TRUE Positive", truePositiveBadge)
	} else if strings.Contains(clean, "FALSE Positive") {
		clean = strings.ReplaceAll(clean, "FALSE Positive", falsePositiveBadge)
	}

	return strings.ReplaceAll(clean, "\n", "<br>")
}

// FormatAnalysis - 분석 텍스트 전용: 공통 패스 + MITRE 배지 + 볼드 치환
// MITRE 패턴은 T + 4자리, 선택적으로 .3자리 (예: T1110, T1110.001)
func FormatAnalysis(text string) template.HTML {
	clean := CleanAIOutput(text)
	clean = mitreRe.ReplaceAllString(clean, `<span class="mitre-badge">$0</span>`)
	clean = boldRe.ReplaceAllString(clean, `<strong>$1</strong>`)
	return template.HTML(clean)
}

// FormatPlaybook - 플레이북 텍스트 전용: 공통 패스 + 볼드 치환만
func FormatPlaybook(text string) template.HTML {
	clean := CleanAIOutput(text)
	clean = boldRe.ReplaceAllString(clean, `<strong>$1</strong>`)
	return template.HTML(clean)
}
