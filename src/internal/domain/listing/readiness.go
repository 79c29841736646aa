package listing

// ===========================
// ReadinessService 領域服務
// ===========================

// IssueCode 就緒檢查的問題代碼
//
// 固定枚舉，與人類可讀的 reason 文字互相獨立：
// UI 與 API 消費者依代碼分支，絕不解析文字。
type IssueCode string

const (
	IssueKycMissing            IssueCode = "kyc_missing"
	IssueScoreBelowMin         IssueCode = "score_below_min"
	IssueRppRejected           IssueCode = "rpp_rejected"
	IssueMediaMinMissing       IssueCode = "media_min_missing"
	IssueAddressIncomplete     IssueCode = "address_incomplete"
	IssueRequiredFieldsMissing IssueCode = "required_fields_missing"
)

// Readiness 就緒評估結果
type Readiness struct {
	Score      int
	Bucket     CompletenessBucket
	CanPublish bool
	Issues     []IssueCode
	Reasons    []string // 人類可讀的發佈阻擋原因（僅發佈門檻）
}

// ReadinessService 就緒評估服務
//
// 把 CompletenessPolicy 與 PublishPolicy 組合成一次回答：
// 「這個房源離可發佈還差什麼」。無狀態，可安全共享。
type ReadinessService struct{}

// NewReadinessService 建構函數
func NewReadinessService() *ReadinessService {
	return &ReadinessService{}
}

// Evaluate 評估房源就緒度
//
// 參數：
//   prop - 房源聚合
//   mediaCount - 附掛的媒體數量（外部信號）
//   hasRppDoc - 是否存在 RPP 類型文件（外部信號）
//   kycVerified - 刊登者 KYC 狀態
//
// CanPublish 僅由三個發佈門檻決定（KYC / 分數 / RPP）；
// Issues 額外涵蓋媒體、地址、必填欄位的待辦提示。
func (s *ReadinessService) Evaluate(prop *Property, mediaCount int, hasRppDoc bool, kycVerified bool) Readiness {
	signals := prop.Signals(mediaCount, hasRppDoc)
	score := signals.Score()

	ok, reasons := CanPublish(PublishInput{
		KycVerified:        kycVerified,
		Score:              score,
		RppStatus:          prop.RppStatus(),
		BlockIfRppRejected: true,
	})

	var issues []IssueCode
	if !kycVerified {
		issues = append(issues, IssueKycMissing)
	}
	if score < MinPublishScore {
		issues = append(issues, IssueScoreBelowMin)
	}
	if prop.RppStatus() == RppRejected {
		issues = append(issues, IssueRppRejected)
	}
	if mediaCount == 0 {
		issues = append(issues, IssueMediaMinMissing)
	}
	if !signals.HasCity || !signals.HasState {
		issues = append(issues, IssueAddressIncomplete)
	}
	if !signals.HasTitle || !signals.HasPropertyType || !signals.HasPrice {
		issues = append(issues, IssueRequiredFieldsMissing)
	}

	return Readiness{
		Score:      score,
		Bucket:     ClassifyCompleteness(score),
		CanPublish: ok,
		Issues:     issues,
		Reasons:    reasons,
	}
}
