package media

import "sort"

// ===========================
// MediaOrderingPolicy 排序策略
// ===========================

// SelectCover 選出封面候選的索引
//
// 策略：
// 1. 首選最低 position 的 image
// 2. 沒有任何 image 時，退而取最低 position 的任意資產
// 3. 空列表返回 -1
//
// 同 position 取列表中先出現者（穩定）。
func SelectCover(assets []*MediaAsset) int {
	if len(assets) == 0 {
		return -1
	}

	bestImage := -1
	bestAny := -1
	for i, a := range assets {
		if bestAny == -1 || a.Position() < assets[bestAny].Position() {
			bestAny = i
		}
		if a.IsImage() && (bestImage == -1 || a.Position() < assets[bestImage].Position()) {
			bestImage = i
		}
	}

	if bestImage != -1 {
		return bestImage
	}
	return bestAny
}

// NormalizePositions 重排為連續的 0 起始序列
//
// 依當前 position 排序（同值按原始順序，穩定排序），
// 然後重新指派 0..n-1。重排 / 移除之後必須調用，
// 維持排序不變條件。
func NormalizePositions(assets []*MediaAsset) {
	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].Position() < assets[j].Position()
	})
	for i, a := range assets {
		// position 已驗證非負，MoveTo 不會失敗
		_ = a.MoveTo(i)
	}
}

// EnsureCoverAtZero 保證封面在 position 0
//
// 若選出的封面不在列表開頭，先把它搬到最前，再正規化。
// 調用之後，調用者可以假設 index 0 就是封面。
func EnsureCoverAtZero(assets []*MediaAsset) {
	cover := SelectCover(assets)
	if cover == -1 {
		return
	}

	coverAsset := assets[cover]
	rest := make([]*MediaAsset, 0, len(assets)-1)
	rest = append(rest, assets[:cover]...)
	rest = append(rest, assets[cover+1:]...)
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].Position() < rest[j].Position()
	})

	assets[0] = coverAsset
	copy(assets[1:], rest)
	for i, a := range assets {
		_ = a.MoveTo(i)
	}
}
