package api

// 无状态偏移分页协议：一页完全由 (skip, limit) 决定，服务端不保存任何游标状态。
// 客户端按上一页的 limit（而不是实际返回条数）递增 skip 来翻页。

const (
	// DefaultPageLimit 默认每页条数
	DefaultPageLimit = 5
	// MaxPageLimit 每页条数上限
	MaxPageLimit = 100
)

// NormalizePage 规整分页参数
// skip 小于 0 归零；limit 非正取默认值，超过上限则截断
func NormalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return skip, limit
}

// HasMore 判断是否还有下一页
// 返回条数等于 limit 时认为还有更多。结果集恰好剩 limit 条时会误报一次，
// 客户端多翻一页拿到空结果即可，安全且幂等。
func HasMore(count, limit int) bool {
	return count == limit
}

// MergeCommentsByID 按 ID 去重合并分页结果
// 重复翻到同一页（比如客户端竞态下重复请求第 0 页）时，累积列表不会出现重复项。
// acc 中已有的条目保持原有顺序，page 中的新条目按页内顺序追加。
func MergeCommentsByID(acc, page []CommentItem) []CommentItem {
	seen := make(map[uint]struct{}, len(acc))
	for _, c := range acc {
		seen[c.ID] = struct{}{}
	}
	merged := acc
	for _, c := range page {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}
