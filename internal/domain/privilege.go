package domain

import "strings"

// PrivilegePolicy decides whether a user is exempt from quota enforcement
// and allowed to trigger admin operations. The core never sees how the
// decision is made.
type PrivilegePolicy interface {
	IsPrivileged(email string) bool
}

// AdminEmailSet is a PrivilegePolicy backed by a fixed set of admin email
// addresses, matched case-insensitively.
type AdminEmailSet struct {
	emails map[string]struct{}
}

var _ PrivilegePolicy = AdminEmailSet{}

func NewAdminEmailSet(emails []string) AdminEmailSet {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		set[email] = struct{}{}
	}
	return AdminEmailSet{emails: set}
}

func (s AdminEmailSet) IsPrivileged(email string) bool {
	_, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}
