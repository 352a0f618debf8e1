package domain

// The rules below are pure functions of the caller and the target resource.
// A nil caller is an unauthenticated request.

// HasRole reports whether u holds one of roles.
func HasRole(u *User, roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// ListAccess returns the access level a caller's paste listing is restricted to.
// The empty Access means unrestricted; only admins get it.
func ListAccess(caller *User) Access {
	if caller.IsAdmin() {
		return ""
	}
	return AccessPublic
}

// Listable reports whether p may appear in caller's paste listing.
// Single-paste fetch by id does not consult this.
func Listable(caller *User, p *Paste) bool {
	restrict := ListAccess(caller)
	return restrict == "" || p.Access == restrict
}

// CanDeletePaste allows the author and any admin.
func CanDeletePaste(caller *User, p *Paste) bool {
	if caller == nil || p == nil {
		return false
	}
	return caller.ID == p.AuthorID || caller.IsAdmin()
}

// CanViewProfile reports whether caller sees target's full record rather than
// the username-only projection.
func CanViewProfile(caller, target *User) bool {
	if caller == nil || target == nil {
		return false
	}
	return caller.Username == target.Username || caller.IsAdmin()
}

// CanDeleteUser allows self-deletion and any admin.
func CanDeleteUser(caller, target *User) bool {
	if caller == nil || target == nil {
		return false
	}
	return caller.ID == target.ID || caller.IsAdmin()
}
