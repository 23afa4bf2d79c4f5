package delegation

import (
	"fmt"
	"time"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// Defaults 委托文书的业务默认值。
// 作为配置注入映射器，测试和部署可以整体替换而不碰映射逻辑。
type Defaults struct {
	DelegationType    string   // 委托方式
	ValidityPeriod    string   // 有效期（月）
	DelegationContent []string // 委托内容
	TradeMode         string   // 缺少核注清单时的贸易方式
	Currency          string   // 缺省币制
	Origin            string   // 缺省原产地
}

// StandardDefaults 长期委托的标准默认值
func StandardDefaults() Defaults {
	return Defaults{
		DelegationType: "long-term",
		ValidityPeriod: "12",
		DelegationContent: []string{
			"办理进出口货物的报关、报检手续",
			"代缴相关税费",
			"办理海关查验",
			"提交或修改报关单证",
			"签收海关法律文书",
		},
		TradeMode: "一般贸易",
		Currency:  "USD",
		Origin:    "未知",
	}
}

// Mapper 把合并数据投影成委托书和委托协议
type Mapper struct {
	defaults Defaults
	now      func() time.Time
}

// NewMapper 创建映射器
func NewMapper(defaults Defaults) *Mapper {
	return &Mapper{defaults: defaults, now: time.Now}
}

// NewMapperWithClock 创建使用指定时钟的映射器（测试用）
func NewMapperWithClock(defaults Defaults, now func() time.Time) *Mapper {
	return &Mapper{defaults: defaults, now: now}
}

// MapToDelegationLetter 映射委托书。
// 委托方取第一条客户记录，被委托方取企业记录；
// 缺失或存在多个候选时记警告，不中断。
func (m *Mapper) MapToDelegationLetter(data model.MergedData) (model.DelegationLetter, []string) {
	var warnings []string

	var client *model.CustomerInfo
	if len(data.Customers) == 0 {
		warnings = append(warnings, "缺少客户信息，委托方字段将为空")
	} else {
		if len(data.Customers) > 1 {
			warnings = append(warnings, fmt.Sprintf("发现多个客户（%d个），将使用第一个客户作为委托方", len(data.Customers)))
		}
		client = &data.Customers[0]
	}

	if data.Enterprise == nil {
		warnings = append(warnings, "缺少企业信息，被委托方字段将为空")
	}

	letter := model.DelegationLetter{
		DelegationType:    m.defaults.DelegationType,
		ValidityPeriod:    m.defaults.ValidityPeriod,
		DelegationContent: m.defaults.DelegationContent,
		SignDate:          m.now().Format("2006-01-02"),
		Status:            model.LetterStatusInitiated,
	}

	if client != nil {
		letter.ClientCompanyName = client.Name
		letter.ClientCustomsCode = client.CustomsCode
		letter.ClientSocialCreditCode = client.SocialCreditCode
	}

	if data.Enterprise != nil {
		letter.AgentCompanyName = data.Enterprise.Name
		letter.AgentCustomsCode = data.Enterprise.CustomsCode
		letter.AgentSocialCreditCode = data.Enterprise.SocialCreditCode
		letter.AgentAuthorizedSigner = data.Enterprise.LegalPerson
		letter.AgentContactPhone = data.Enterprise.Phone
	}

	return letter, warnings
}

// MapToDelegationAgreements 把每条商品明细映射成一份委托协议，
// 序号按商品列表顺序从 1 起编。贸易方式和进出口日期来自核注清单，
// 清单缺失时用默认值并记警告。
func (m *Mapper) MapToDelegationAgreements(data model.MergedData) ([]model.DelegationAgreement, []string) {
	var warnings []string

	if len(data.Goods) == 0 {
		warnings = append(warnings, "缺少商品明细，无法生成委托协议")
		return []model.DelegationAgreement{}, warnings
	}

	tradeMode := m.defaults.TradeMode
	importExportDate := m.now().Format("2006-01-02")
	if data.Declaration != nil {
		if data.Declaration.SupervisionMode != "" {
			tradeMode = data.Declaration.SupervisionMode
		}
		if data.Declaration.EntryDate != "" {
			importExportDate = data.Declaration.EntryDate
		}
	}

	agreements := make([]model.DelegationAgreement, len(data.Goods))
	for i, item := range data.Goods {
		agreement := model.DelegationAgreement{
			SerialNumber:     i + 1,
			MainGoodsName:    item.GoodsName,
			HSCode:           item.HSCode,
			Currency:         m.defaults.Currency,
			Quantity:         item.Quantity,
			Unit:             item.Unit,
			TradeMode:        tradeMode,
			OriginPlace:      m.defaults.Origin,
			ImportExportDate: importExportDate,
			AgreementStatus:  model.AgreementStatusPendingConfirmation,
		}
		if item.TotalPrice != nil {
			agreement.TotalValue = *item.TotalPrice
		}
		if item.Currency != "" {
			agreement.Currency = item.Currency
		}
		if item.Origin != "" {
			agreement.OriginPlace = item.Origin
		}
		agreements[i] = agreement
	}

	if data.Declaration == nil {
		warnings = append(warnings, "缺少核注清单信息，贸易方式和进出口日期使用默认值")
	}

	return agreements, warnings
}

// MapDelegationData 完整映射：委托书 + 委托协议，警告按先书后协议的顺序拼接
func (m *Mapper) MapDelegationData(data model.MergedData) model.MappingResult {
	letter, letterWarnings := m.MapToDelegationLetter(data)
	agreements, agreementWarnings := m.MapToDelegationAgreements(data)

	warnings := make([]string, 0, len(letterWarnings)+len(agreementWarnings))
	warnings = append(warnings, letterWarnings...)
	warnings = append(warnings, agreementWarnings...)

	return model.MappingResult{
		DelegationLetter:     letter,
		DelegationAgreements: agreements,
		Warnings:             warnings,
	}
}
