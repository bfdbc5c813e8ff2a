package matching

// IsValid reports whether every matched pair is mutually acceptable and no
// program exceeds its capacity.
func IsValid(assignment Assignment, residents ResidentPreferences, hospitals HospitalPreferences, capacities Capacities) bool {
	load := make(map[string]int, len(hospitals))
	for r, h := range assignment {
		if !ranks(residents[r], h) || !ranks(hospitals[h], r) {
			return false
		}
		load[h]++
	}
	for h, n := range load {
		if n > capacities[h] {
			return false
		}
	}
	return true
}

// IsStable reports whether no resident and program would both rather be matched
// to each other than keep their current assignment.
func IsStable(assignment Assignment, residents ResidentPreferences, hospitals HospitalPreferences, capacities Capacities) bool {
	matched := make(map[string][]string, len(hospitals))
	for r, h := range assignment {
		matched[h] = append(matched[h], r)
	}

	for r, prefs := range residents {
		current, has := assignment[r]
		for _, h := range prefs {
			if has && h == current {
				break
			}
			if !ranks(hospitals[h], r) {
				continue
			}
			if len(matched[h]) < capacities[h] {
				return false
			}
			for _, other := range matched[h] {
				if position(hospitals[h], r) < position(hospitals[h], other) {
					return false
				}
			}
		}
	}
	return true
}

func ranks(prefs []string, name string) bool {
	return position(prefs, name) >= 0
}

func position(prefs []string, name string) int {
	for i, p := range prefs {
		if p == name {
			return i
		}
	}
	return -1
}
