package model

import "time"

// Task 一次委托书生成任务的持久化记录
type Task struct {
	ID         string                `json:"id"`
	CreatedAt  time.Time             `json:"createdAt"`
	FileNames  []string              `json:"fileNames"`
	Letter     DelegationLetter      `json:"letter"`
	Agreements []DelegationAgreement `json:"agreements"`
	Warnings   []string              `json:"warnings"`
	MergeLogs  []MergeLogEntry       `json:"mergeLogs"`
}

// TaskSummary 任务列表项
type TaskSummary struct {
	ID             string    `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	FileNames      []string  `json:"fileNames"`
	AgreementCount int       `json:"agreementCount"`
	WarningCount   int       `json:"warningCount"`
}
