// Package plan extends a short catalog of meals into a longer sequence.
//
// Each meal carries a tolerance t: after it appears at position p, it should
// appear again no later than p+t. Given the catalog and a target length, the
// extender keeps the catalog as a prefix and fills the remaining positions
// (the extra region) with repeats placed at tolerance-derived positions.
//
// # Placement
//
// Meals are processed in catalog order. For the meal at catalog position i,
// the k-th repeat ideally lands at absolute position i + k*t. When that slot
// is already taken, the search moves forward to the next free slot and the
// meal's [Cursor] remembers the shift, so later repeats of the same meal keep
// their spacing relative to where the previous one actually landed. Search
// never moves backward and never evicts an earlier placement.
//
// A repeat with no free slot ahead of it is dropped and recorded as a
// [Shortfall]. Slots that remain empty once every meal has been placed are
// filled with the placeholder meal, and that step is logged.
//
// The result always has exactly the requested length. Calls are pure and
// deterministic: the same catalog and target produce the same plan, and
// concurrent calls share no state.
//
// # Strategies
//
// [Extend] implements the spacing placement above. [Cycle] repeats the
// catalog verbatim (optionally padded to a longer period), which is useful as
// a baseline when comparing plans.
//
//	p, err := plan.Extend(meal.Demo(), 16)
//	if err != nil {
//	    return err
//	}
//	for _, m := range p.Meals {
//	    fmt.Println(m)
//	}
package plan
