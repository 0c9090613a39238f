package impl

import (
	"context"
	"strings"
	"testing"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_SignUpThenLogin(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()

	signedUp := a.signUpStudent(t, "ann@x.edu", "Ann")
	assert.NotEmpty(t, signedUp.Token)

	out, err := a.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.edu", Password: "pw-Ann"})
	require.NoError(t, err)

	student, ok := entity.AsStudent(out.Account)
	require.True(t, ok)
	assert.Equal(t, signedUp.Account.Identity().ID, student.User.ID)
	assert.Equal(t, "State University", student.Profile.School)
	assert.NotEqual(t, "pw-Ann", student.User.PasswordHash, "password must be stored hashed")
}

func TestAccountService_LoginNormalizesEmail(t *testing.T) {
	a := newApp(t, 0)
	a.signUpStudent(t, "Ann@X.edu", "Ann")

	_, err := a.accounts.Login(context.Background(), &usecase.LoginInput{Email: "  ann@x.EDU ", Password: "pw-Ann"})
	assert.NoError(t, err)
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()
	a.signUpStudent(t, "ann@x.edu", "Ann")

	_, unknownErr := a.accounts.Login(ctx, &usecase.LoginInput{Email: "nobody@x.edu", Password: "pw-Ann"})
	_, wrongErr := a.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.edu", Password: "wrong"})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAccountService_DuplicateSignUp(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()
	a.signUpStudent(t, "ann@x.edu", "Ann")

	_, err := a.accounts.SignUp(ctx, &usecase.SignUpInput{
		Role: entity.RoleStudent, Email: "ann@x.edu", Password: "other", Name: "Other Ann", School: "MIT",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)

	// The first account is untouched.
	out, err := a.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.edu", Password: "pw-Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", out.Account.Identity().Name)

	result, err := a.directory.Search(ctx, &usecase.SearchCandidatesInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
}

func TestAccountService_RecruiterCompanyKey(t *testing.T) {
	tests := []struct {
		name    string
		company string
		key     string
		wantErr error
	}{
		{name: "exact company", company: "Tesla", key: teslaKey},
		{name: "case-insensitive company", company: "tesla", key: teslaKey},
		{name: "other company", company: "Google", key: teslaKey, wantErr: domainerrors.ErrCompanyMismatch},
		{name: "short key", company: "Tesla", key: "d74hf8e0", wantErr: domainerrors.ErrCompanyKeyLength},
		{name: "unknown key", company: "Tesla", key: "zzzzzzzzz", wantErr: domainerrors.ErrInvalidCompanyKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, 0)

			out, err := a.accounts.SignUp(context.Background(), &usecase.SignUpInput{
				Role:       entity.RoleRecruiter,
				Email:      "rita@tesla.com",
				Password:   "pw",
				Name:       "Rita",
				Company:    tt.company,
				CompanyKey: tt.key,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.RoleRecruiter, out.Account.Role())
		})
	}
}

func TestAccountService_SignUpValidation(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SignUpInput
	}{
		{name: "missing password", input: usecase.SignUpInput{Role: entity.RoleStudent, Email: "a@x.edu", Name: "A", School: "S"}},
		{name: "bad email", input: usecase.SignUpInput{Role: entity.RoleStudent, Email: "nope", Password: "pw", Name: "A", School: "S"}},
		{name: "student without school", input: usecase.SignUpInput{Role: entity.RoleStudent, Email: "a@x.edu", Password: "pw", Name: "A"}},
		{name: "recruiter without company", input: usecase.SignUpInput{Role: entity.RoleRecruiter, Email: "a@x.edu", Password: "pw", Name: "A", CompanyKey: teslaKey}},
		{name: "unknown role", input: usecase.SignUpInput{Role: "admin", Email: "a@x.edu", Password: "pw", Name: "A"}},
		{name: "password over 72 bytes", input: usecase.SignUpInput{Role: entity.RoleStudent, Email: "a@x.edu", Password: strings.Repeat("é", 40), Name: "A", School: "S"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApp(t, 0)
			input := tt.input

			_, err := a.accounts.SignUp(context.Background(), &input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestAccountService_MultibytePasswordWithinLimit(t *testing.T) {
	a := newApp(t, 0)
	password := strings.Repeat("é", 36)

	_, err := a.accounts.SignUp(context.Background(), &usecase.SignUpInput{
		Role: entity.RoleStudent, Email: "a@x.edu", Password: password, Name: "A", School: "S",
	})
	require.NoError(t, err)

	_, err = a.accounts.Login(context.Background(), &usecase.LoginInput{Email: "a@x.edu", Password: password})
	assert.NoError(t, err)
}

func TestAccountService_AuthenticateAndLogout(t *testing.T) {
	a := newApp(t, 0)
	ctx := context.Background()
	out := a.signUpStudent(t, "ann@x.edu", "Ann")

	account, err := a.accounts.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Account.Identity().ID, account.Identity().ID)
	require.NoError(t, entity.RequireRole(account, entity.RoleStudent))

	require.NoError(t, a.accounts.Logout(ctx, out.Token))
	_, err = a.accounts.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)

	_, err = a.accounts.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAccountService_SessionLimit(t *testing.T) {
	a := newApp(t, 2)
	ctx := context.Background()
	a.signUpStudent(t, "ann@x.edu", "Ann")

	_, err := a.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.edu", Password: "pw-Ann"})
	require.NoError(t, err)

	_, err = a.accounts.Login(ctx, &usecase.LoginInput{Email: "ann@x.edu", Password: "pw-Ann"})
	assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
}
