package accounts

const (
	// RoleUser is the base role every account holds.
	RoleUser = "user"
	// RoleAdmin grants access to the admin surfaces.
	RoleAdmin = "admin"
)

// ensureBaseRole returns the role set with duplicates removed and the base
// role guaranteed to be present, preserving the order roles were given in.
func ensureBaseRole(roles []string) []string {
	out := make([]string, 0, len(roles)+1)
	seen := map[string]struct{}{}

	hasBase := false
	for _, r := range roles {
		if r == "" {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
		if r == RoleUser {
			hasBase = true
		}
	}

	if !hasBase {
		out = append(out, RoleUser)
	}

	return out
}
