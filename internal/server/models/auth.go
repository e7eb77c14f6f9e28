package models

// Role is the part a principal must play on a stream for an operation.
type Role int

const (
	RoleSender Role = iota
	RoleRecipient
)

func (r Role) String() string {
	switch r {
	case RoleSender:
		return "sender"
	case RoleRecipient:
		return "recipient"
	default:
		return "unknown"
	}
}

// IsAuthorized reports whether p holds role on s.
func IsAuthorized(p Principal, role Role, s *Stream) bool {
	if s == nil {
		return false
	}
	switch role {
	case RoleSender:
		return s.Sender == p
	case RoleRecipient:
		return s.Recipient == p
	default:
		return false
	}
}

// Involves reports whether p is the sender or the recipient of s.
func Involves(p Principal, s *Stream) bool {
	return IsAuthorized(p, RoleSender, s) || IsAuthorized(p, RoleRecipient, s)
}
