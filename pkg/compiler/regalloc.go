package compiler

import "slices"

// tempRegs is the allocation order of the temporary registers.
var tempRegs = [...]string{"$t0", "$t1", "$t2", "$t3", "$t4", "$t5", "$t6", "$t7", "$t8", "$t9"}

// RegPool partitions tempRegs into free and used. Allocation takes the head of
// the free list and release puts a register back at the head, so the most
// recently released register is handed out next.
type RegPool struct {
	free []string
	used map[string]bool
}

func NewRegPool() *RegPool {
	p := &RegPool{used: make(map[string]bool, len(tempRegs))}
	p.Reset()
	return p
}

// Reset returns every register to the free list in the initial order.
func (p *RegPool) Reset() {
	p.free = append(p.free[:0], tempRegs[:]...)
	clear(p.used)
}

// Allocate removes and returns the first free register.
func (p *RegPool) Allocate() (string, error) {
	if len(p.free) == 0 {
		return "", resourceErr("register allocation", ErrRegistersExhausted)
	}
	r := p.free[0]
	p.free = p.free[1:]
	p.used[r] = true
	tracer().Debugf("alloc %s (%d free)", r, len(p.free))
	return r, nil
}

// Release returns r to the front of the free list. Releasing a register that
// is already free, or that is not a temporary, does nothing.
func (p *RegPool) Release(r string) {
	if !p.used[r] {
		return
	}
	delete(p.used, r)
	p.free = slices.Insert(p.free, 0, r)
	tracer().Debugf("release %s (%d free)", r, len(p.free))
}

// Free returns a copy of the free list in allocation order.
func (p *RegPool) Free() []string {
	return slices.Clone(p.free)
}

// Used returns the registers currently allocated, in tempRegs order.
func (p *RegPool) Used() []string {
	var out []string
	for _, r := range tempRegs {
		if p.used[r] {
			out = append(out, r)
		}
	}
	return out
}

// InUse reports how many registers are allocated.
func (p *RegPool) InUse() int {
	return len(p.used)
}
