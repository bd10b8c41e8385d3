package utils

const (
	ScopeUser  = "user"
	ScopeAdmin = "admin"
)

// IsAdmin reports whether the scope set carries the admin role.
func IsAdmin(scope []string) bool {
	for _, s := range scope {
		if s == ScopeAdmin {
			return true
		}
	}
	return false
}
