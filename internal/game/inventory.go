package game

// Inventory is the rover's ingot hold: one stack per material,
// sharing a single capacity.
type Inventory struct {
	counts   [MaterialCount]int
	capacity int
}

// NewInventory creates an empty hold limited to capacity ingots in total.
func NewInventory(capacity int) Inventory {
	return Inventory{capacity: capacity}
}

// Count returns the number of ingots of one material.
func (inv *Inventory) Count(m Material) int {
	if !m.Valid() {
		return 0
	}
	return inv.counts[m]
}

// Counts returns a copy of every stack, indexed by Material.
func (inv *Inventory) Counts() [MaterialCount]int {
	return inv.counts
}

// Total returns the number of ingots across all stacks.
func (inv *Inventory) Total() int {
	n := 0
	for _, c := range inv.counts {
		n += c
	}
	return n
}

// Capacity returns the maximum number of ingots the hold accepts.
func (inv *Inventory) Capacity() int { return inv.capacity }

// Headroom returns how many more ingots fit.
func (inv *Inventory) Headroom() int { return inv.capacity - inv.Total() }

// Deposit adds n ingots of one material. Returns false, changing nothing,
// if the material is unknown, n is negative, or the hold would overflow.
func (inv *Inventory) Deposit(m Material, n int) bool {
	if !m.Valid() || n < 0 || n > inv.Headroom() {
		return false
	}
	inv.counts[m] += n
	return true
}

// Withdraw removes a single ingot. Returns false if the stack is empty.
func (inv *Inventory) Withdraw(m Material) bool {
	if inv.Count(m) == 0 {
		return false
	}
	inv.counts[m]--
	return true
}
