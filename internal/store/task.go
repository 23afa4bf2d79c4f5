package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// SaveTask 保存一次生成任务
func (s *Store) SaveTask(task *model.Task) error {
	fileNames, err := json.Marshal(task.FileNames)
	if err != nil {
		return fmt.Errorf("serialize file names: %w", err)
	}
	letter, err := json.Marshal(task.Letter)
	if err != nil {
		return fmt.Errorf("serialize letter: %w", err)
	}
	agreements, err := json.Marshal(task.Agreements)
	if err != nil {
		return fmt.Errorf("serialize agreements: %w", err)
	}
	warnings, err := json.Marshal(task.Warnings)
	if err != nil {
		return fmt.Errorf("serialize warnings: %w", err)
	}
	mergeLogs, err := json.Marshal(task.MergeLogs)
	if err != nil {
		return fmt.Errorf("serialize merge logs: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO delegation_tasks (id, created_at, file_names, letter, agreements, warnings, merge_logs)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.CreatedAt.UTC(), string(fileNames), string(letter),
		string(agreements), string(warnings), string(mergeLogs),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetTask 按 ID 读取任务
func (s *Store) GetTask(id string) (*model.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, created_at, file_names, letter, agreements, warnings, merge_logs
		FROM delegation_tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}
	return task, nil
}

// ListTasks 按创建时间倒序列出任务摘要
func (s *Store) ListTasks(limit int) ([]model.TaskSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, created_at, file_names, agreements, warnings
		FROM delegation_tasks ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	summaries := make([]model.TaskSummary, 0)
	for rows.Next() {
		var (
			id         string
			createdAt  time.Time
			fileNames  string
			agreements string
			warnings   string
		)
		if err := rows.Scan(&id, &createdAt, &fileNames, &agreements, &warnings); err != nil {
			return nil, fmt.Errorf("scan task row: %w", err)
		}

		summary := model.TaskSummary{ID: id, CreatedAt: createdAt}
		if err := json.Unmarshal([]byte(fileNames), &summary.FileNames); err != nil {
			return nil, fmt.Errorf("parse file names: %w", err)
		}

		var agreementList []model.DelegationAgreement
		if err := json.Unmarshal([]byte(agreements), &agreementList); err != nil {
			return nil, fmt.Errorf("parse agreements: %w", err)
		}
		summary.AgreementCount = len(agreementList)

		var warningList []string
		if err := json.Unmarshal([]byte(warnings), &warningList); err != nil {
			return nil, fmt.Errorf("parse warnings: %w", err)
		}
		summary.WarningCount = len(warningList)

		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// DeleteTask 删除任务
func (s *Store) DeleteTask(id string) error {
	_, err := s.db.Exec(`DELETE FROM delegation_tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*model.Task, error) {
	var (
		task       model.Task
		fileNames  string
		letter     string
		agreements string
		warnings   string
		mergeLogs  string
	)

	err := row.Scan(&task.ID, &task.CreatedAt, &fileNames, &letter, &agreements, &warnings, &mergeLogs)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(fileNames), &task.FileNames); err != nil {
		return nil, fmt.Errorf("parse file names: %w", err)
	}
	if err := json.Unmarshal([]byte(letter), &task.Letter); err != nil {
		return nil, fmt.Errorf("parse letter: %w", err)
	}
	if err := json.Unmarshal([]byte(agreements), &task.Agreements); err != nil {
		return nil, fmt.Errorf("parse agreements: %w", err)
	}
	if err := json.Unmarshal([]byte(warnings), &task.Warnings); err != nil {
		return nil, fmt.Errorf("parse warnings: %w", err)
	}
	if err := json.Unmarshal([]byte(mergeLogs), &task.MergeLogs); err != nil {
		return nil, fmt.Errorf("parse merge logs: %w", err)
	}

	return &task, nil
}
