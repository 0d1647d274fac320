// core/adapter/plan.go
package adapter

// Slot pairs an adapter with its position in the configured list. The
// position is the final tie-break everywhere, so a match found through an
// index and one found individually compare identically.
type Slot struct {
	Ord int
	Ad  Adapter
}

// Plan is the build-time classification of an adapter set into combined
// indexes plus a residual list matched one by one. Adapters needing indels,
// carrying ambiguity codes, or linked composition are never indexed.
type Plan struct {
	Indexes []*Index
	Single  []Slot
}

// Partition classifies adapters. With useIndex false, or when a class holds
// fewer than two indexable adapters, everything is matched individually —
// an index over one adapter only adds overhead.
func Partition(ads []Adapter, useIndex bool) (Plan, error) {
	var plan Plan
	var prefix, back []Slot
	for ord, ad := range ads {
		s := Slot{Ord: ord, Ad: ad}
		if !useIndex || !indexable(ad) {
			plan.Single = append(plan.Single, s)
			continue
		}
		switch ad.Kind() {
		case KindPrefix:
			prefix = append(prefix, s)
		case KindBack:
			back = append(back, s)
		default:
			plan.Single = append(plan.Single, s)
		}
	}
	for _, group := range []struct {
		kind  Kind
		slots []Slot
	}{{KindPrefix, prefix}, {KindBack, back}} {
		if len(group.slots) < 2 {
			plan.Single = append(plan.Single, group.slots...)
			continue
		}
		ix, err := newIndex(group.kind, group.slots)
		if err != nil {
			return Plan{}, err
		}
		plan.Indexes = append(plan.Indexes, ix)
	}
	return plan, nil
}
