package anim

// RuntimeInfo is per-evaluation scratch data an AnimationGroup writes once
// per effective tick for every TargetAnimation it owns. Grounded on
// original_source/src/runtime_info.rs, extended with a BetweenFrame shaper
// field: the Rust RuntimeInfo struct omits it while animation_group.rs's own
// construction of a RuntimeInfo sets an amount_calc field that the struct
// definition doesn't declare — an inconsistency between snapshots (see
// DESIGN.md OQ6). The shaper is load-bearing (TypeAnimationContext.anime
// must pass it to CurveAdapter.Interpolate per spec.md §4.4), so it is kept
// here as a real field rather than dropped.
type RuntimeInfo struct {
	GroupWeight    float32
	AmountInSecond float64
	Attr           AttrId
	CurveSlot      CurveSlot
	BetweenFrame   AnimationAmountCalc
}

// RuntimeInfoMap is the per-tick staging structure ordered by TypeId: for
// each value-type index, a map from target to the list of RuntimeInfo
// entries staged this tick. Append order is the observable contract — it is
// never sorted.
type RuntimeInfoMap[T comparable] struct {
	list []map[T][]RuntimeInfo
}

// NewRuntimeInfoMap returns an empty map.
func NewRuntimeInfoMap[T comparable]() *RuntimeInfoMap[T] {
	return &RuntimeInfoMap[T]{}
}

// AddType grows the map so ty has a backing slot. Call immediately after
// allocating a TypeId.
func (m *RuntimeInfoMap[T]) AddType(ty TypeId) {
	for TypeId(len(m.list)) <= ty {
		m.list = append(m.list, map[T][]RuntimeInfo{})
	}
}

// GetTypeList returns the target→infos map for ty, or nil if ty was never
// registered.
func (m *RuntimeInfoMap[T]) GetTypeList(ty TypeId) map[T][]RuntimeInfo {
	if int(ty) >= len(m.list) {
		return nil
	}
	return m.list[ty]
}

// Insert appends a RuntimeInfo for (ty, target). Returns
// RuntimeInfoMapNotFindType if ty was never registered via AddType.
func (m *RuntimeInfoMap[T]) Insert(ty TypeId, target T, info RuntimeInfo) error {
	if int(ty) >= len(m.list) {
		return NewError(RuntimeInfoMapNotFindType)
	}
	m.list[ty][target] = append(m.list[ty][target], info)
	return nil
}

// Reset clears every type's entries in place, keeping backing capacity.
func (m *RuntimeInfoMap[T]) Reset() {
	for _, byTarget := range m.list {
		for target := range byTarget {
			delete(byTarget, target)
		}
	}
}
