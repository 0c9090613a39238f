package entity

import "recruit/internal/errors"

var (
	// ErrAccountMissing is returned by RequireRole when no account is present.
	ErrAccountMissing = errors.New("no authenticated account")
	// ErrRoleMismatch is returned by RequireRole when the account has another role.
	ErrRoleMismatch = errors.New("account role does not match")
	// ErrProfileMissing is returned when a user has no profile for its role.
	ErrProfileMissing = errors.New("user has no profile for its role")
)

// Account is an authenticated user together with its role-specific profile.
// The concrete type is either *StudentAccount or *RecruiterAccount.
type Account interface {
	Identity() *User
	Role() Role
}

// StudentAccount is the Account variant for students.
type StudentAccount struct {
	User    *User
	Profile *StudentProfile
}

// Identity returns the underlying user.
func (a *StudentAccount) Identity() *User { return a.User }

// Role always returns RoleStudent.
func (a *StudentAccount) Role() Role { return RoleStudent }

// RecruiterAccount is the Account variant for recruiters.
type RecruiterAccount struct {
	User    *User
	Profile *RecruiterProfile
}

// Identity returns the underlying user.
func (a *RecruiterAccount) Identity() *User { return a.User }

// Role always returns RoleRecruiter.
func (a *RecruiterAccount) Role() Role { return RoleRecruiter }

// NewAccount builds the Account variant matching the user's role.
func NewAccount(user *User) (Account, error) {
	if user == nil {
		return nil, ErrAccountMissing
	}

	switch user.Role {
	case RoleStudent:
		if user.StudentProfile == nil {
			return nil, ErrProfileMissing
		}

		return &StudentAccount{User: user, Profile: user.StudentProfile}, nil
	case RoleRecruiter:
		if user.RecruiterProfile == nil {
			return nil, ErrProfileMissing
		}

		return &RecruiterAccount{User: user, Profile: user.RecruiterProfile}, nil
	default:
		return nil, ErrRoleMismatch
	}
}

// RequireRole is the single guard used by every role-gated entry point,
// on the server and in the client session store alike.
func RequireRole(account Account, role Role) error {
	if account == nil || account.Identity() == nil {
		return ErrAccountMissing
	}
	if account.Role() != role {
		return ErrRoleMismatch
	}

	return nil
}

// AsStudent returns the student variant of account, if it is one.
func AsStudent(account Account) (*StudentAccount, bool) {
	student, ok := account.(*StudentAccount)

	return student, ok
}

// AsRecruiter returns the recruiter variant of account, if it is one.
func AsRecruiter(account Account) (*RecruiterAccount, bool) {
	recruiter, ok := account.(*RecruiterAccount)

	return recruiter, ok
}
