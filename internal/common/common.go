package common

const (
	TenderActive = "active"

	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"

	RoleCompany = "company"
)

const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100

	// MaxLogoSize is the largest logo upload accepted, in bytes.
	MaxLogoSize = 5 << 20
)

var ApplicationStatuses = []string{ApplicationPending, ApplicationAccepted, ApplicationRejected}

func IsApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}

	return false
}
