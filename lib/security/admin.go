package security

// IsAdmin reports whether the configured admin group name is among the
// caller's group memberships. A nil or empty group set is never an admin.
// Pure and total: this is the single gate every privileged operation
// shares, evaluated before any read or write happens.
func IsAdmin(groups []string, adminGroup string) bool {
	if adminGroup == "" {
		return false
	}
	for _, group := range groups {
		if group == adminGroup {
			return true
		}
	}
	return false
}
