// Package ecs 提供按整数句柄索引的实体存储
//
// 每种实体类型一个 Arena：槽位数组 + 空闲链表，销毁后的槽位会被复用。
// 句柄携带槽位代数，槽位复用后旧句柄自动失效，不存在指针别名问题。
package ecs

// EntityID 是实体句柄
// 低 32 位为槽位下标，高 32 位为槽位代数；0 保留为无效句柄
type EntityID uint64

// InvalidEntity 无效句柄
const InvalidEntity EntityID = 0

func makeID(index, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(index))
}

// Index 返回槽位下标
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation 返回槽位代数
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

type slot[T any] struct {
	value T
	gen   uint32 // 代数从 1 开始，保证有效句柄永不为 0
	alive bool
}

// Arena 管理同一类型实体的存储
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32 // 空闲槽位栈
	count int
	// 待删除的实体句柄列表
	entitiesToDestroy []EntityID
}

// NewArena 创建一个新的 Arena，capacity 为预分配槽位数
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots:             make([]slot[T], 0, capacity),
		free:              make([]uint32, 0, capacity),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// Spawn 存入实体并返回句柄，优先复用空闲槽位
func (a *Arena[T]) Spawn(value T) EntityID {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}

	s := &a.slots[index]
	s.gen++
	s.value = value
	s.alive = true
	a.count++
	return makeID(index, s.gen)
}

// Alive 检查句柄是否仍指向存活实体
func (a *Arena[T]) Alive(id EntityID) bool {
	index := id.Index()
	if id == InvalidEntity || int(index) >= len(a.slots) {
		return false
	}
	s := &a.slots[index]
	return s.alive && s.gen == id.Generation()
}

// Get 返回句柄对应实体的指针
// 指针只在下一次 Spawn 之前有效（Spawn 可能扩容底层数组）
func (a *Arena[T]) Get(id EntityID) (*T, bool) {
	if !a.Alive(id) {
		return nil, false
	}
	return &a.slots[id.Index()].value, true
}

// Remove 立即删除实体，句柄无效时返回 false
func (a *Arena[T]) Remove(id EntityID) bool {
	if !a.Alive(id) {
		return false
	}
	index := id.Index()
	s := &a.slots[index]
	var zero T
	s.value = zero
	s.alive = false
	a.free = append(a.free, index)
	a.count--
	return true
}

// DestroyEntity 标记实体待删除(不立即删除)
// 同一帧内重复标记同一实体是安全的
func (a *Arena[T]) DestroyEntity(id EntityID) {
	a.entitiesToDestroy = append(a.entitiesToDestroy, id)
}

// IsMarked 检查实体是否已被标记待删除
func (a *Arena[T]) IsMarked(id EntityID) bool {
	for _, marked := range a.entitiesToDestroy {
		if marked == id {
			return true
		}
	}
	return false
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回实际删除数量
func (a *Arena[T]) RemoveMarkedEntities() int {
	removed := 0
	for _, id := range a.entitiesToDestroy {
		if a.Remove(id) {
			removed++
		}
	}
	a.entitiesToDestroy = a.entitiesToDestroy[:0] // 清空切片
	return removed
}

// Clear 删除全部实体并丢弃待删除标记
// 槽位代数保留，清理前发出的句柄全部失效
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.slots[i].value = zero
		a.slots[i].alive = false
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
	a.entitiesToDestroy = a.entitiesToDestroy[:0]
}

// Len 返回存活实体数量
func (a *Arena[T]) Len() int {
	return a.count
}

// IDs 按槽位顺序返回所有存活实体的句柄
// 遍历顺序固定，保证模拟结果可复现
func (a *Arena[T]) IDs() []EntityID {
	result := make([]EntityID, 0, a.count)
	for i := range a.slots {
		if a.slots[i].alive {
			result = append(result, makeID(uint32(i), a.slots[i].gen))
		}
	}
	return result
}

// Each 按槽位顺序遍历存活实体
// 回调中不要调用 Spawn/Remove；需要删除时使用 DestroyEntity
func (a *Arena[T]) Each(fn func(id EntityID, value *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.alive {
			fn(makeID(uint32(i), s.gen), &s.value)
		}
	}
}
