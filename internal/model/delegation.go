package model

// LetterStatus 委托关系状态
type LetterStatus string

const (
	LetterStatusInitiated  LetterStatus = "initiated"  // 发起
	LetterStatusConfirmed  LetterStatus = "confirmed"  // 确认
	LetterStatusRejected   LetterStatus = "rejected"   // 拒绝
	LetterStatusExpired    LetterStatus = "expired"    // 过期作废
	LetterStatusTerminated LetterStatus = "terminated" // 终止
)

// AgreementStatus 委托协议状态（海关侧状态机 0-11）
type AgreementStatus string

const (
	AgreementStatusPendingConfirmation   AgreementStatus = "pending_confirmation"   // 发起待确认
	AgreementStatusSentToCustoms         AgreementStatus = "sent_to_customs"        // 协议确认已发海关
	AgreementStatusReadyForDeclaration   AgreementStatus = "ready_for_declaration"  // 委托协议可报关
	AgreementStatusRejected              AgreementStatus = "rejected"               // 委托发起被拒绝
	AgreementStatusInUse                 AgreementStatus = "in_use"                 // 委托协议正使用
	AgreementStatusUsedByCustoms         AgreementStatus = "used_by_customs"        // 委托协议海关已用
	AgreementStatusExpired               AgreementStatus = "expired"                // 委托协议过期
	AgreementStatusCancellationPending   AgreementStatus = "cancellation_pending"   // 委托撤销待确认
	AgreementStatusCancellationConfirmed AgreementStatus = "cancellation_confirmed" // 委托撤销已确认
	AgreementStatusCancelled             AgreementStatus = "cancelled"              // 协议撤销成功
	AgreementStatusCreationFailed        AgreementStatus = "creation_failed"        // 委托协议新增失败
	AgreementStatusCancellationFailed    AgreementStatus = "cancellation_failed"    // 委托协议撤销失败
)

// DelegationLetter 代理报关委托书
type DelegationLetter struct {
	// 委托方
	ClientCompanyName      string `json:"clientCompanyName,omitempty"`
	ClientCustomsCode      string `json:"clientCustomsCode"`
	ClientSocialCreditCode string `json:"clientSocialCreditCode,omitempty"`

	// 被委托方
	AgentCompanyName      string `json:"agentCompanyName,omitempty"`
	AgentCustomsCode      string `json:"agentCustomsCode,omitempty"`
	AgentSocialCreditCode string `json:"agentSocialCreditCode,omitempty"`
	AgentAuthorizedSigner string `json:"agentAuthorizedSigner,omitempty"`
	AgentContactPhone     string `json:"agentContactPhone,omitempty"`

	// 委托关系
	DelegationType    string       `json:"delegationType"` // single | long-term
	ValidityPeriod    string       `json:"validityPeriod"` // 有效期（月）
	DelegationContent []string     `json:"delegationContent"`
	SignDate          string       `json:"signDate,omitempty"`
	Status            LetterStatus `json:"status,omitempty"`
}

// DelegationAgreement 委托协议，一条商品明细对应一份
type DelegationAgreement struct {
	SerialNumber     int             `json:"serialNumber"`
	MainGoodsName    string          `json:"mainGoodsName"`
	HSCode           string          `json:"hsCode"`
	TotalValue       float64         `json:"totalValue"`
	Currency         string          `json:"currency,omitempty"`
	Quantity         *float64        `json:"quantity,omitempty"`
	Unit             string          `json:"unit,omitempty"`
	TradeMode        string          `json:"tradeMode"`
	OriginPlace      string          `json:"originPlace"`
	ImportExportDate string          `json:"importExportDate"`
	AgreementStatus  AgreementStatus `json:"agreementStatus,omitempty"`
}

// MappingResult 委托文书映射结果
type MappingResult struct {
	DelegationLetter     DelegationLetter      `json:"delegationLetter"`
	DelegationAgreements []DelegationAgreement `json:"delegationAgreements"`
	Warnings             []string              `json:"warnings"`
}
