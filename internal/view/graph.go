package view

import "github.com/soc-lens/backend/internal/model"

// 조사 페이지의 엔티티 관계 그래프 데이터.
// 렌더링 자체는 그래프 라이브러리가 하고, 여기서는 노드/엣지 계약만 생성.

type GraphNode struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	Shape string `json:"shape"`
}

type GraphEdge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"`
}

type NetworkGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

const graphRuleLabelMax = 20

// BuildNetworkGraph - 알림 하나를 룰/유저/IP/호스트 4노드 그래프로 변환
func BuildNetworkGraph(a model.Alert) NetworkGraph {
	fields := GraphFields(a)

	ruleName := fields.RuleDescription
	if runes := []rune(ruleName); len(runes) > graphRuleLabelMax {
		ruleName = string(runes[:graphRuleLabelMax])
	}
	ruleName += "..."

	return NetworkGraph{
		Nodes: []GraphNode{
			{ID: 1, Label: ruleName, Color: "#e74c3c", Shape: "box"},
			{ID: 2, Label: fields.User, Color: "#3498db", Shape: "ellipse"},
			{ID: 3, Label: fields.IP, Color: "#f1c40f", Shape: "ellipse"},
			{ID: 4, Label: fields.Computer, Color: "#95a5a6", Shape: "database"},
		},
		Edges: []GraphEdge{
			{From: 3, To: 1, Label: "triggered"},
			{From: 2, To: 1, Label: "involved"},
			{From: 1, To: 4, Label: "occurred on"},
		},
	}
}
