package game

import "github.com/art3mis-rover/art3mis/internal/world"

// Batch is the outcome of one refinery run: ingots produced per material.
type Batch [MaterialCount]int

// Total returns the number of ingots in the batch.
func (b Batch) Total() int {
	n := 0
	for _, c := range b {
		n += c
	}
	return n
}

// CanRefine reports whether a refinery run would fire: a full batch of
// regolith in the hopper and room for a full batch of ingots in the hold.
func CanRefine(res *Resources, inv *Inventory, t world.Tuning) bool {
	return res.Regolith >= float64(t.BatchSize) && inv.Total()+t.BatchSize <= inv.Capacity()
}

// Refine smelts one batch of regolith into ingots of random type.
// Each ingot is an independent uniform draw over the materials.
// When CanRefine is false nothing changes and ok is false.
func Refine(res *Resources, inv *Inventory, rng Rand, t world.Tuning) (b Batch, ok bool) {
	if !CanRefine(res, inv, t) {
		return Batch{}, false
	}
	res.Regolith -= float64(t.BatchSize)
	for i := 0; i < t.BatchSize; i++ {
		m := Material(rng.IntN(int(MaterialCount)))
		inv.Deposit(m, 1)
		b[m]++
	}
	return b, true
}
