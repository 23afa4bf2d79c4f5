package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wangpeng1017/0120guanwu/internal/delegation"
	"github.com/wangpeng1017/0120guanwu/internal/model"
	"github.com/wangpeng1017/0120guanwu/internal/service/excel"
	"github.com/wangpeng1017/0120guanwu/internal/store"
)

// Handlers API处理器
type Handlers struct {
	store     *store.Store
	reader    *excel.Reader
	exporter  *excel.Exporter
	extractor *delegation.Extractor
	mapper    *delegation.Mapper
	logger    *zap.Logger
}

// NewHandlers 创建处理器
func NewHandlers(s *store.Store, defaults delegation.Defaults, logger *zap.Logger) *Handlers {
	return &Handlers{
		store:     s,
		reader:    excel.NewReader(),
		exporter:  excel.NewExporter(),
		extractor: delegation.NewExtractor(),
		mapper:    delegation.NewMapper(defaults),
		logger:    logger,
	}
}

// RegisterRoutes 注册委托文书相关路由
func (h *Handlers) RegisterRoutes(api *gin.RouterGroup) {
	d := api.Group("/delegation")
	{
		d.POST("/generate", h.GenerateDelegation)
		d.GET("/tasks", h.ListTasks)
		d.GET("/tasks/:taskId", h.GetTask)
		d.DELETE("/tasks/:taskId", h.DeleteTask)
		d.POST("/letter/export", h.ExportLetter)
		d.POST("/agreements/export", h.ExportAgreements)
	}
}

// Response 通用响应
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func errorResponse(c *gin.Context, code int, message string) {
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
	})
}

// GenerateResult 委托书生成响应
type GenerateResult struct {
	TaskID               string                      `json:"taskId"`
	Files                []FileClassification        `json:"files"`
	DelegationLetter     model.DelegationLetter      `json:"delegationLetter"`
	DelegationAgreements []model.DelegationAgreement `json:"delegationAgreements"`
	Warnings             []string                    `json:"warnings"`
	MergeLogs            []model.MergeLogEntry       `json:"mergeLogs"`
}

// FileClassification 单个文件的 sheet 识别结果
type FileClassification struct {
	FileName string                      `json:"fileName"`
	Sheets   []model.SheetClassification `json:"sheets"`
	Priority float64                     `json:"priority"`
}

// GenerateDelegation 上传一批单证文件，生成委托书和委托协议
func (h *Handlers) GenerateDelegation(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		errorResponse(c, 1001, "请上传文件")
		return
	}

	uploads := form.File["files"]
	if len(uploads) == 0 {
		errorResponse(c, 1001, "未上传文件")
		return
	}

	filesData := make([]delegation.FileData, 0, len(uploads))
	classifications := make([]FileClassification, 0, len(uploads))

	for _, upload := range uploads {
		src, err := upload.Open()
		if err != nil {
			errorResponse(c, 1002, fmt.Sprintf("读取文件 %s 失败", upload.Filename))
			return
		}

		sheets, err := h.reader.ReadWorkbook(src)
		src.Close()
		if err != nil {
			h.logger.Warn("解析工作簿失败",
				zap.String("file", upload.Filename),
				zap.Error(err))
			errorResponse(c, 1003, fmt.Sprintf("解析文件 %s 失败: %v", upload.Filename, err))
			return
		}

		classified := delegation.ClassifySheets(sheets)
		data := h.extractor.ExtractDataFromFile(classified)

		sheetResults := make([]model.SheetClassification, len(classified))
		for i, cs := range classified {
			sheetResults[i] = cs.Classification
		}
		classifications = append(classifications, FileClassification{
			FileName: upload.Filename,
			Sheets:   sheetResults,
			Priority: delegation.CalculateFilePriority(data),
		})

		filesData = append(filesData, delegation.FileData{
			FileName: upload.Filename,
			Data:     data,
		})
	}

	merged := delegation.MergeExcelData(filesData)
	result := h.mapper.MapDelegationData(merged)

	task := &model.Task{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		FileNames:  merged.SourceFiles,
		Letter:     result.DelegationLetter,
		Agreements: result.DelegationAgreements,
		Warnings:   result.Warnings,
		MergeLogs:  merged.MergeLogs,
	}
	if err := h.store.SaveTask(task); err != nil {
		h.logger.Error("保存任务失败", zap.String("taskId", task.ID), zap.Error(err))
		errorResponse(c, 2001, "保存任务失败")
		return
	}

	h.logger.Info("委托书生成完成",
		zap.String("taskId", task.ID),
		zap.Int("files", len(uploads)),
		zap.Int("agreements", len(result.DelegationAgreements)),
		zap.Int("warnings", len(result.Warnings)))

	success(c, GenerateResult{
		TaskID:               task.ID,
		Files:                classifications,
		DelegationLetter:     result.DelegationLetter,
		DelegationAgreements: result.DelegationAgreements,
		Warnings:             result.Warnings,
		MergeLogs:            merged.MergeLogs,
	})
}

// ListTasks 列出历史生成任务
func (h *Handlers) ListTasks(c *gin.Context) {
	summaries, err := h.store.ListTasks(50)
	if err != nil {
		h.logger.Error("查询任务列表失败", zap.Error(err))
		errorResponse(c, 2002, "查询任务列表失败")
		return
	}
	success(c, summaries)
}

// GetTask 获取任务详情
func (h *Handlers) GetTask(c *gin.Context) {
	taskID := c.Param("taskId")

	task, err := h.store.GetTask(taskID)
	if err != nil {
		h.logger.Error("查询任务失败", zap.String("taskId", taskID), zap.Error(err))
		errorResponse(c, 2002, "查询任务失败")
		return
	}
	if task == nil {
		errorResponse(c, 2003, "任务不存在")
		return
	}
	success(c, task)
}

// DeleteTask 删除任务
func (h *Handlers) DeleteTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if err := h.store.DeleteTask(taskID); err != nil {
		h.logger.Error("删除任务失败", zap.String("taskId", taskID), zap.Error(err))
		errorResponse(c, 2004, "删除任务失败")
		return
	}
	success(c, gin.H{"deleted": true})
}

// ExportLetter 导出委托书 Excel
func (h *Handlers) ExportLetter(c *gin.Context) {
	var letter model.DelegationLetter
	if err := c.ShouldBindJSON(&letter); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}

	f, err := h.exporter.ExportLetter(letter)
	if err != nil {
		h.logger.Error("导出委托书失败", zap.Error(err))
		errorResponse(c, 3001, "导出委托书失败")
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		errorResponse(c, 3001, "导出委托书失败")
		return
	}

	sendWorkbook(c, buf.Bytes(), "委托书.xlsx")
}

// ExportAgreements 导出委托协议 Excel
func (h *Handlers) ExportAgreements(c *gin.Context) {
	var agreements []model.DelegationAgreement
	if err := c.ShouldBindJSON(&agreements); err != nil {
		errorResponse(c, 1001, "参数错误")
		return
	}

	f, err := h.exporter.ExportAgreements(agreements)
	if err != nil {
		h.logger.Error("导出委托协议失败", zap.Error(err))
		errorResponse(c, 3002, "导出委托协议失败")
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		errorResponse(c, 3002, "导出委托协议失败")
		return
	}

	sendWorkbook(c, buf.Bytes(), "委托协议.xlsx")
}

func sendWorkbook(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
