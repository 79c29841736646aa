package listing

import "fmt"

// ===========================
// PublishPolicy 發佈門檻
// ===========================

// PublishInput 發佈資格評估的輸入
//
// 三個門檻彼此獨立評估：
// 1. KYC 必須已驗證
// 2. 完整度分數必須 >= MinScore
// 3. RPP 狀態不得為 rejected（除非 BlockIfRppRejected 關閉）
type PublishInput struct {
	KycVerified bool
	Score       int
	RppStatus   RppStatus

	// MinScore 分數門檻；0 表示採用預設 MinPublishScore
	MinScore int

	// BlockIfRppRejected RPP 駁回是否阻擋發佈（預設開啟）
	BlockIfRppRejected bool
}

// effectiveMinScore 解析實際採用的分數門檻
func (in PublishInput) effectiveMinScore() int {
	if in.MinScore <= 0 {
		return MinPublishScore
	}
	return in.MinScore
}

// CanPublish 非拋出版本：回傳是否可發佈與所有未通過門檻的原因
//
// 用途：UI 式的就緒檢查（一次列出全部待辦，不是只報第一個）。
// 原因為人類可讀文字；程式分支請改用 AssertPublishable 的錯誤代碼
// 或 ReadinessService 的 issue codes。
func CanPublish(in PublishInput) (bool, []string) {
	var reasons []string

	if !in.KycVerified {
		reasons = append(reasons, "刊登者尚未通過 KYC 驗證")
	}
	if min := in.effectiveMinScore(); in.Score < min {
		reasons = append(reasons, fmt.Sprintf("完整度分數 %d 低於門檻 %d", in.Score, min))
	}
	if in.BlockIfRppRejected && in.RppStatus == RppRejected {
		reasons = append(reasons, "RPP 文件被駁回")
	}

	return len(reasons) == 0, reasons
}

// AssertPublishable 拋出版本：命令路徑使用，必須大聲失敗
//
// 按優先序返回第一個未通過的門檻：
// 1. KYC 未驗證 → ErrKycRequired
// 2. 分數不足 → ErrPublishBlocked（context 攜帶 min / actual）
// 3. RPP 駁回 → ErrRppRejected
func AssertPublishable(in PublishInput) error {
	if !in.KycVerified {
		return ErrKycRequired
	}
	if min := in.effectiveMinScore(); in.Score < min {
		return ErrPublishBlocked.WithContext(
			"min_score", min,
			"actual_score", in.Score,
		)
	}
	if in.BlockIfRppRejected && in.RppStatus == RppRejected {
		return ErrRppRejected.WithContext(
			"rpp_status", string(in.RppStatus),
		)
	}
	return nil
}
