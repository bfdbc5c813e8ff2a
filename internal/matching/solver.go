package matching

import (
	"fmt"
	"sort"
)

// Solver runs resident-proposing deferred acceptance with program capacities.
type Solver struct{}

// NewSolver returns a Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Solve computes the resident-optimal stable matching. A pair is only matched
// when each side ranks the other.
func (s *Solver) Solve(residents ResidentPreferences, hospitals HospitalPreferences, capacities Capacities) (Solution, error) {
	if err := checkInstance(residents, hospitals, capacities); err != nil {
		return Solution{}, err
	}

	rank := hospitalRanks(hospitals)
	held := make(map[string][]string, len(hospitals))
	next := make(map[string]int, len(residents))

	free := make([]string, 0, len(residents))
	for r := range residents {
		free = append(free, r)
	}
	sort.Strings(free)

	for len(free) > 0 {
		r := free[0]
		free = free[1:]

		for prefs := residents[r]; next[r] < len(prefs); {
			h := prefs[next[r]]
			next[r]++

			if _, ok := rank[h][r]; !ok {
				continue
			}
			held[h] = insertByRank(held[h], r, rank[h])
			if len(held[h]) <= capacities[h] {
				break
			}
			// over capacity: the worst held resident is displaced
			worst := held[h][len(held[h])-1]
			held[h] = held[h][:len(held[h])-1]
			if worst != r {
				free = append(free, worst)
				break
			}
		}
	}

	assignment := make(Assignment)
	for h, rs := range held {
		for _, r := range rs {
			assignment[r] = h
		}
	}

	return Solution{
		Assignment: assignment,
		Valid:      IsValid(assignment, residents, hospitals, capacities),
		Stable:     IsStable(assignment, residents, hospitals, capacities),
	}, nil
}

func checkInstance(residents ResidentPreferences, hospitals HospitalPreferences, capacities Capacities) error {
	if len(residents) == 0 || len(hospitals) == 0 {
		return fmt.Errorf("%w: no residents or no programs", ErrInfeasible)
	}
	for h := range hospitals {
		c, ok := capacities[h]
		if !ok {
			return fmt.Errorf("%w: program %q has no capacity", ErrInfeasible, h)
		}
		if c < 0 {
			return fmt.Errorf("%w: program %q has negative capacity %d", ErrInfeasible, h, c)
		}
		for _, r := range hospitals[h] {
			if _, ok := residents[r]; !ok {
				return fmt.Errorf("%w: program %q ranks unknown resident %q", ErrInfeasible, h, r)
			}
		}
	}
	for r, prefs := range residents {
		for _, h := range prefs {
			if _, ok := hospitals[h]; !ok {
				return fmt.Errorf("%w: resident %q ranks unknown program %q", ErrInfeasible, r, h)
			}
		}
	}
	return nil
}

func hospitalRanks(hospitals HospitalPreferences) map[string]map[string]int {
	rank := make(map[string]map[string]int, len(hospitals))
	for h, prefs := range hospitals {
		rank[h] = make(map[string]int, len(prefs))
		for i, r := range prefs {
			if _, dup := rank[h][r]; !dup {
				rank[h][r] = i
			}
		}
	}
	return rank
}

func insertByRank(held []string, r string, rank map[string]int) []string {
	i := sort.Search(len(held), func(i int) bool { return rank[held[i]] > rank[r] })
	held = append(held, "")
	copy(held[i+1:], held[i:])
	held[i] = r
	return held
}
