package compiler

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

// lr0Item is a production with a dot position.
type lr0Item struct {
	prod ProductionID
	dot  int
}

func (it lr0Item) next() (Symbol, bool) {
	rhs := productions[it.prod].RHS
	if it.dot < len(rhs) {
		return rhs[it.dot], true
	}
	return 0, false
}

type itemSet []lr0Item

func (s itemSet) key() string {
	parts := make([]string, len(s))
	for i, it := range s {
		parts[i] = fmt.Sprintf("%d.%d", it.prod, it.dot)
	}
	return strings.Join(parts, " ")
}

func closure(kernel itemSet) itemSet {
	seen := map[lr0Item]bool{}
	var out itemSet
	work := append(itemSet(nil), kernel...)
	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[it] {
			continue
		}
		seen[it] = true
		out = append(out, it)
		if x, ok := it.next(); ok && !x.IsTerminal() {
			for p := range productions {
				if productions[p].LHS == x {
					work = append(work, lr0Item{prod: ProductionID(p)})
				}
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].prod != out[j].prod {
			return out[i].prod < out[j].prod
		}
		return out[i].dot < out[j].dot
	})
	return out
}

func gotoOf(s itemSet, x Symbol) itemSet {
	var kernel itemSet
	for _, it := range s {
		if y, ok := it.next(); ok && y == x {
			kernel = append(kernel, lr0Item{prod: it.prod, dot: it.dot + 1})
		}
	}
	if len(kernel) == 0 {
		return nil
	}
	return closure(kernel)
}

// followSets computes FOLLOW for every non-terminal.
func followSets() map[Symbol]map[Symbol]bool {
	nullable := map[Symbol]bool{}
	first := map[Symbol]map[Symbol]bool{}
	for s := Symbol(0); s < numSymbols; s++ {
		first[s] = map[Symbol]bool{}
		if s.IsTerminal() {
			first[s][s] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for _, p := range productions {
			allNullable := true
			for _, x := range p.RHS {
				for a := range first[x] {
					if !first[p.LHS][a] {
						first[p.LHS][a] = true
						changed = true
					}
				}
				if !nullable[x] {
					allNullable = false
					break
				}
			}
			if allNullable && !nullable[p.LHS] {
				nullable[p.LHS] = true
				changed = true
			}
		}
	}

	follow := map[Symbol]map[Symbol]bool{}
	for s := SymStart; s < numSymbols; s++ {
		follow[s] = map[Symbol]bool{}
	}
	follow[SymStart][SymEOF] = true
	for changed := true; changed; {
		changed = false
		add := func(dst map[Symbol]bool, src map[Symbol]bool) {
			for a := range src {
				if !dst[a] {
					dst[a] = true
					changed = true
				}
			}
		}
		for _, p := range productions {
			for i, x := range p.RHS {
				if x.IsTerminal() {
					continue
				}
				restNullable := true
				for _, y := range p.RHS[i+1:] {
					add(follow[x], first[y])
					if !nullable[y] {
						restNullable = false
						break
					}
				}
				if restNullable {
					add(follow[x], follow[p.LHS])
				}
			}
		}
	}
	return follow
}

// expectedRow is the SLR(1) row for one generated state; shift and goto
// operands index into the generated state list.
type expectedRow struct {
	actions map[Symbol]Action
	gotos   map[Symbol]int
}

func buildSLR(t *testing.T) []expectedRow {
	t.Helper()
	follow := followSets()
	states := []itemSet{closure(itemSet{{prod: ProdStart}})}
	index := map[string]int{states[0].key(): 0}
	var rows []expectedRow

	for i := 0; i < len(states); i++ {
		row := expectedRow{actions: map[Symbol]Action{}, gotos: map[Symbol]int{}}
		set := func(sym Symbol, a Action) {
			if prev, ok := row.actions[sym]; ok && prev != a {
				t.Fatalf("conflict in state %d on %s: %s vs %s", i, sym, prev, a)
			}
			row.actions[sym] = a
		}
		for x := Symbol(0); x < numSymbols; x++ {
			g := gotoOf(states[i], x)
			if g == nil {
				continue
			}
			j, ok := index[g.key()]
			if !ok {
				j = len(states)
				states = append(states, g)
				index[g.key()] = j
			}
			if x.IsTerminal() {
				set(x, shift(j))
			} else {
				row.gotos[x] = j
			}
		}
		for _, it := range states[i] {
			if _, ok := it.next(); ok {
				continue
			}
			if it.prod == ProdStart {
				set(SymEOF, accept())
				continue
			}
			for a := range follow[productions[it.prod].LHS] {
				set(a, reduce(it.prod))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func TestParseTableConformance(t *testing.T) {
	want := buildSLR(t)
	if len(want) != len(parseTable) {
		t.Fatalf("table has %d states, grammar yields %d", len(parseTable), len(want))
	}

	// Pair generated states with table states by walking both automata.
	toTable := map[int]int{0: 0}
	fromTable := map[int]int{0: 0}
	queue := []int{0}
	pair := func(g, s int) {
		if prev, ok := toTable[g]; ok {
			if prev != s {
				t.Fatalf("state %d maps to table states %d and %d", g, prev, s)
			}
			return
		}
		if prev, ok := fromTable[s]; ok && prev != g {
			t.Fatalf("table state %d matches grammar states %d and %d", s, prev, g)
		}
		toTable[g], fromTable[s] = s, g
		queue = append(queue, g)
	}

	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]
		s := toTable[g]
		exp, got := want[g], parseTable[s]

		if len(got.Actions) != len(exp.actions) {
			t.Errorf("state %d: %d actions, want %d", s, len(got.Actions), len(exp.actions))
		}
		for sym, ea := range exp.actions {
			ga, ok := got.Actions[sym]
			if !ok {
				t.Errorf("state %d: missing action on %s (want %s)", s, sym, ea)
				continue
			}
			if ga.Kind != ea.Kind {
				t.Errorf("state %d on %s: got %s, want %s", s, sym, ga, ea)
				continue
			}
			switch ea.Kind {
			case AKShift:
				pair(ea.Operand, ga.Operand)
			case AKReduce:
				if ga.Operand != ea.Operand {
					t.Errorf("state %d on %s: got %s, want %s", s, sym, ga, ea)
				}
			}
		}

		if len(got.Gotos) != len(exp.gotos) {
			t.Errorf("state %d: %d gotos, want %d", s, len(got.Gotos), len(exp.gotos))
		}
		for sym, eg := range exp.gotos {
			gg, ok := got.Gotos[sym]
			if !ok {
				t.Errorf("state %d: missing goto on %s", s, sym)
				continue
			}
			pair(eg, gg)
		}
	}

	if len(toTable) != len(parseTable) {
		t.Errorf("only %d of %d table states are reachable", len(toTable), len(parseTable))
	}
}

func TestParseTableShape(t *testing.T) {
	accepts := 0
	for s, row := range parseTable {
		for sym, a := range row.Actions {
			if !sym.IsTerminal() {
				t.Errorf("state %d: action keyed by non-terminal %s", s, sym)
			}
			switch a.Kind {
			case AKShift:
				if a.Operand < 0 || a.Operand >= len(parseTable) {
					t.Errorf("state %d: shift to missing state %d", s, a.Operand)
				}
			case AKReduce:
				if a.Operand < 0 || a.Operand >= int(numProductions) || a.production() == ProdStart {
					t.Errorf("state %d: reduce by invalid production %d", s, a.Operand)
				}
			case AKAccept:
				accepts++
				if sym != SymEOF {
					t.Errorf("state %d: accept on %s", s, sym)
				}
			default:
				t.Errorf("state %d: invalid action kind %d", s, a.Kind)
			}
		}
		for sym, g := range row.Gotos {
			if sym.IsTerminal() {
				t.Errorf("state %d: goto keyed by terminal %s", s, sym)
			}
			if g < 0 || g >= len(parseTable) {
				t.Errorf("state %d: goto to missing state %d", s, g)
			}
		}
	}
	if accepts != 1 {
		t.Errorf("expected exactly one accept entry, found %d", accepts)
	}
}

func TestFollowOfCond(t *testing.T) {
	// The conditional's branch is emitted when Cond is reduced, which must
	// happen on ')' before the body is parsed.
	f := followSets()[SymCond]
	if len(f) != 1 || !f[SymRParen] {
		t.Errorf("FOLLOW(Cond) = %v, want {)}", f)
	}
}
