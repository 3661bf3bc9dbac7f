package models

type UserRole string
type ApplicationStatus string

const (
	UserRoleEmployer  UserRole = "EMPLOYER"
	UserRoleJobSeeker UserRole = "JOB_SEEKER"

	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsValid сообщает, является ли роль одной из известных
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEmployer, UserRoleJobSeeker:
		return true
	}
	return false
}

// IsValid сообщает, является ли статус одним из PENDING/ACCEPTED/REJECTED
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}
