package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "guanwu.db"))
	if err != nil {
		t.Fatalf("初始化存储失败: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleTask(id string, createdAt time.Time) *model.Task {
	return &model.Task{
		ID:        id,
		CreatedAt: createdAt,
		FileNames: []string{"invoice.xlsx", "manifest.xlsx"},
		Letter: model.DelegationLetter{
			ClientCompanyName: "客户甲",
			AgentCompanyName:  "深圳某某电子有限公司",
			DelegationType:    "long-term",
			ValidityPeriod:    "12",
			Status:            model.LetterStatusInitiated,
		},
		Agreements: []model.DelegationAgreement{
			{SerialNumber: 1, MainGoodsName: "白炽灯", HSCode: "8512201000", TradeMode: "区内物流货物"},
		},
		Warnings: []string{"缺少核注清单信息，贸易方式和进出口日期使用默认值"},
		MergeLogs: []model.MergeLogEntry{
			{Field: "enterprise", SourceFile: "manifest.xlsx", Priority: 150, Reason: "选择优先级最高的文件（优先级: 150.0）"},
		},
	}
}

func TestStore_SaveAndGetTask(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	task := sampleTask("task-1", time.Now())

	if err := s.SaveTask(task); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	got, err := s.GetTask("task-1")
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if got == nil {
		t.Fatalf("任务不存在")
	}
	if got.Letter.ClientCompanyName != "客户甲" {
		t.Fatalf("letter got=%+v", got.Letter)
	}
	if len(got.Agreements) != 1 || got.Agreements[0].HSCode != "8512201000" {
		t.Fatalf("agreements got=%+v", got.Agreements)
	}
	if len(got.MergeLogs) != 1 || got.MergeLogs[0].Field != "enterprise" {
		t.Fatalf("mergeLogs got=%+v", got.MergeLogs)
	}
}

func TestStore_GetTask_NotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	got, err := s.GetTask("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestStore_ListTasks_OrderAndCounts(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		task := sampleTask(id, base.Add(time.Duration(i)*time.Hour))
		if err := s.SaveTask(task); err != nil {
			t.Fatalf("保存 %s 失败: %v", id, err)
		}
	}

	summaries, err := s.ListTasks(10)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("summaries got=%d want=3", len(summaries))
	}
	// 按创建时间倒序
	if summaries[0].ID != "new" || summaries[2].ID != "old" {
		t.Fatalf("unexpected order: %s, %s, %s", summaries[0].ID, summaries[1].ID, summaries[2].ID)
	}
	if summaries[0].AgreementCount != 1 || summaries[0].WarningCount != 1 {
		t.Fatalf("counts got=%+v", summaries[0])
	}
	if len(summaries[0].FileNames) != 2 {
		t.Fatalf("fileNames got=%v", summaries[0].FileNames)
	}
}

func TestStore_ListTasks_Limit(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	base := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		task := sampleTask(string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		if err := s.SaveTask(task); err != nil {
			t.Fatalf("保存失败: %v", err)
		}
	}

	summaries, err := s.ListTasks(2)
	if err != nil {
		t.Fatalf("列表失败: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries got=%d want=2", len(summaries))
	}
}

func TestStore_DeleteTask(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.SaveTask(sampleTask("task-1", time.Now())); err != nil {
		t.Fatalf("保存失败: %v", err)
	}

	if err := s.DeleteTask("task-1"); err != nil {
		t.Fatalf("删除失败: %v", err)
	}
	got, err := s.GetTask("task-1")
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}
	if got != nil {
		t.Fatalf("任务应已删除: %+v", got)
	}

	// 删除不存在的任务不报错
	if err := s.DeleteTask("missing"); err != nil {
		t.Fatalf("删除不存在任务报错: %v", err)
	}
}
