package store

// LoadState 描述最近一次发起的拉取/变更的结局
// 粒度是整个 store，不是单个实体
type LoadState int

const (
	StateIdle LoadState = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s LoadState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
