package dto

// ── 演示数据模块 DTO ──

// DemoDataSummary 一次播种的结果摘要
type DemoDataSummary struct {
	Variant   string `json:"variant"`
	Timeslots int    `json:"timeslots"`
	Rooms     int    `json:"rooms"`
	Lessons   int    `json:"lessons"`
	Skipped   bool   `json:"skipped"`
	Reason    string `json:"reason,omitempty"` // 跳过原因
}
