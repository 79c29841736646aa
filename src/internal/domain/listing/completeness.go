package listing

import "math"

// ===========================
// CompletenessPolicy 完整度計分
// ===========================

// MinPublishScore 發佈門檻分數（PublishPolicy 的預設下限）
const MinPublishScore = 80

// completenessSignalCount 計分信號總數（九因子等權模型）
const completenessSignalCount = 9

// CompletenessBucket 完整度分級
type CompletenessBucket string

const (
	BucketGreen CompletenessBucket = "green"
	BucketAmber CompletenessBucket = "amber"
	BucketRed   CompletenessBucket = "red"
)

// CompletenessSignals 完整度計分的固定信號集
//
// 每個信號貢獻等份權重（約 11%），全真時合計 100。
// 權重刻意不按欄位豐富度分配：描述的「長度」不影響分數，
// 只看「是否存在」，讓計分確定且無法靠灌字數操弄。
type CompletenessSignals struct {
	HasTitle        bool // 標題非空
	HasPropertyType bool // 房源類型已設定
	HasPrice        bool // 價格 > 0
	HasCity         bool // 地址含城市
	HasState        bool // 地址含州 / 省
	HasDescription  bool // 描述非空（任意長度）
	HasAmenity      bool // 至少一個設施標籤
	HasMedia        bool // 至少一個媒體資產
	HasDocument     bool // 至少一份文件
}

// Score 計算完整度分數
//
// 分數 = 為真信號的權重總和，四捨五入後鉗制在 [0, 100]。
func (s CompletenessSignals) Score() int {
	count := 0
	for _, present := range []bool{
		s.HasTitle,
		s.HasPropertyType,
		s.HasPrice,
		s.HasCity,
		s.HasState,
		s.HasDescription,
		s.HasAmenity,
		s.HasMedia,
		s.HasDocument,
	} {
		if present {
			count++
		}
	}

	score := int(math.Round(float64(count) * 100.0 / completenessSignalCount))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// ClassifyCompleteness 將分數映射為分級
//
// score >= 80 → green；50 <= score < 80 → amber；其餘 → red
func ClassifyCompleteness(score int) CompletenessBucket {
	switch {
	case score >= MinPublishScore:
		return BucketGreen
	case score >= 50:
		return BucketAmber
	default:
		return BucketRed
	}
}
