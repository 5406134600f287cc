package store

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/shuvamd5/storefront-admin/internal/model"
)

// Store 单实体类型的内存容器
// 持有一份按插入序排列、ID 唯一的集合，外加请求生命周期状态。
// 四种操作之外不允许任何路径改动集合；界面看到的永远是
// 最近一次成功的服务端状态，或一条明确的错误。
type Store[T model.Identifiable, P any] struct {
	name   string
	remote Remote[T, P]

	mu      sync.RWMutex
	items   []T
	state   LoadState
	err     string
	version uint64

	// 乱序响应防护（见 reconcile 注释）
	fetchSeq uint64
	opSeq    map[model.EntityID]uint64
}

// Option store 构造配置
type Option[T model.Identifiable] func(*options[T])

type options[T model.Identifiable] struct {
	placeholder *T
}

// WithPlaceholder 初始占位行
// 首次拉取前界面有内容可渲染；占位行用本地 ID，拉取成功后整体换掉
func WithPlaceholder[T model.Identifiable](row T) Option[T] {
	return func(o *options[T]) { o.placeholder = &row }
}

// New 创建实体 store
func New[T model.Identifiable, P any](name string, remote Remote[T, P], opts ...Option[T]) *Store[T, P] {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store[T, P]{
		name:   name,
		remote: remote,
		state:  StateIdle,
		opSeq:  make(map[model.EntityID]uint64),
	}
	if o.placeholder != nil {
		s.items = []T{*o.placeholder}
	}
	return s
}

// Name store 名称（实体类型）
func (s *Store[T, P]) Name() string { return s.name }

// ==================== 四种操作 ====================

// FetchAll 全量拉取
// 成功后整体替换集合（服务端是唯一事实来源）；失败保留旧集合，
// 界面宁可显示过期数据也不显示空白。
// 新的 FetchAll 会使尚未落地的旧拉取作废，乱序响应直接丢弃。
func (s *Store[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	s.fetchSeq++
	seq := s.fetchSeq
	s.state = StatePending
	s.err = ""
	s.version++
	s.mu.Unlock()

	list, err := s.remote.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.fetchSeq {
		// 已被更新的拉取取代，本次结果作废
		log.Printf("[Store] %s: 丢弃过期的拉取响应 (seq %d < %d)", s.name, seq, s.fetchSeq)
		return s.snapshotLocked(), nil
	}

	if err != nil {
		s.state = StateFailed
		s.err = err.Error()
		s.version++
		return nil, err
	}

	s.items = dedupByID(list)
	s.state = StateSucceeded
	s.version++
	return s.snapshotLocked(), nil
}

// Create 创建实体
// 不做乐观插入：等服务端回了带 ID 的实体再追加，
// 避免占位行与真实行的对账问题。
func (s *Store[T, P]) Create(ctx context.Context, payload P) (T, error) {
	var zero T

	ent, err := s.remote.Create(ctx, payload)
	if err != nil {
		s.fail(err)
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := ent.EntityID()
	if id == "" {
		// 远端没回实体，集合不动，等下一次拉取对齐
		return zero, nil
	}

	// 保持 ID 唯一不变式：同 ID 已存在则原位替换
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = ent
			s.afterMutateLocked()
			return ent, nil
		}
	}
	s.items = append(s.items, ent)
	s.afterMutateLocked()
	return ent, nil
}

// Update 编辑实体
// 成功后按 ID 原位替换（位置不变），其余元素不动；
// 集合里找不到该 ID 时静默跳过。
// 同一 ID 的并发写用序列号裁决：只有最后发起的那次能落地。
func (s *Store[T, P]) Update(ctx context.Context, id model.EntityID, payload P) (T, error) {
	var zero T
	if id.IsPlaceholder() {
		err := fmt.Errorf("记录尚未保存，不能编辑")
		s.fail(err)
		return zero, err
	}

	seq := s.nextOpSeq(id)

	ent, err := s.remote.Update(ctx, id, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.opSeq[id] {
		// 已有更新的写操作发出，本次响应作废
		log.Printf("[Store] %s: 丢弃 %s 的过期编辑响应", s.name, id)
		return ent, err
	}

	if err != nil {
		s.state = StateFailed
		s.err = err.Error()
		s.version++
		return zero, err
	}

	if ent.EntityID() == "" {
		return zero, nil
	}
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = ent
			break
		}
	}
	s.afterMutateLocked()
	return ent, nil
}

// Delete 软删除
// 远端只做逻辑删除（必须带作废原因），本地把元素移出集合
func (s *Store[T, P]) Delete(ctx context.Context, id model.EntityID, voidRemarks string) error {
	if id.IsPlaceholder() {
		err := fmt.Errorf("记录尚未保存，不能删除")
		s.fail(err)
		return err
	}

	seq := s.nextOpSeq(id)

	err := s.remote.Delete(ctx, id, voidRemarks)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.opSeq[id] {
		log.Printf("[Store] %s: 丢弃 %s 的过期删除响应", s.name, id)
		return err
	}

	if err != nil {
		s.state = StateFailed
		s.err = err.Error()
		s.version++
		return err
	}

	kept := s.items[:0:0]
	for _, it := range s.items {
		if it.EntityID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	delete(s.opSeq, id)
	s.afterMutateLocked()
	return nil
}

// ==================== 快照访问 ====================

// Items 集合快照（副本，调用方随便改）
func (s *Store[T, P]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get 按 ID 取单个实体
func (s *Store[T, P]) Get(id model.EntityID) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// State 当前生命周期状态
func (s *Store[T, P]) State() LoadState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Err 错误槽；空串表示无错
func (s *Store[T, P]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Len 集合长度
func (s *Store[T, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version 每次状态变化递增，轮询方用来判断是否需要重新渲染
func (s *Store[T, P]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// ==================== 内部 ====================

func (s *Store[T, P]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// afterMutateLocked 变更成功后的收尾：清错、推进版本
func (s *Store[T, P]) afterMutateLocked() {
	s.state = StateSucceeded
	s.err = ""
	s.version++
}

// fail 变更失败：错误进错误槽，集合原样保留
func (s *Store[T, P]) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateFailed
	s.err = err.Error()
	s.version++
}

// nextOpSeq 为某个 ID 签发新的写操作序列号
func (s *Store[T, P]) nextOpSeq(id model.EntityID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opSeq[id]++
	return s.opSeq[id]
}

// dedupByID 保序去重，保留首次出现的元素
func dedupByID[T model.Identifiable](list []T) []T {
	seen := make(map[model.EntityID]struct{}, len(list))
	out := make([]T, 0, len(list))
	for _, it := range list {
		id := it.EntityID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, it)
	}
	return out
}
