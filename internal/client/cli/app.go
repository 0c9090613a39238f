// Package cli implements the recruitctl commands.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"recruit/internal/client"
	"recruit/internal/client/session"
	"recruit/internal/domain/entity"
	"recruit/internal/errors"

	"golang.org/x/term"
)

var (
	// ErrNotSignedIn is returned by commands that need a session when none is saved.
	ErrNotSignedIn = errors.New("not signed in, run 'recruitctl login' first")
	// ErrUsage is returned for unknown commands and bad flags.
	ErrUsage = errors.New("usage error")
)

// API is the part of the HTTP client the commands use.
type API interface {
	SignUp(ctx context.Context, req *client.SignUpRequest) (*client.Session, error)
	Login(ctx context.Context, email, password string) (*client.Session, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (entity.Account, error)
	GetProfile(ctx context.Context, token string) (*entity.StudentProfile, error)
	UpdateProfile(ctx context.Context, token string, fields map[string]any) (*entity.StudentProfile, error)
	SearchCandidates(ctx context.Context, token string, q *client.CandidateQuery) (*client.CandidatePage, error)
	RecordHire(ctx context.Context, token string, req *client.HireRequest) (*entity.HiringRecord, error)
	ListHires(ctx context.Context, token string) ([]*entity.HiringRecord, error)
	IsHired(ctx context.Context, token, email string) (bool, error)
	Stats(ctx context.Context, token string) (*client.Stats, error)
}

// App runs one recruitctl command per invocation.
type App struct {
	api      API
	sessions *session.FileStore
	in       *bufio.Reader
	out      io.Writer

	// readPassword is replaced in tests to avoid touching the terminal.
	readPassword func() (string, error)
}

// NewApp wires the commands to api and the saved session.
func NewApp(api API, sessions *session.FileStore, in io.Reader, out io.Writer) *App {
	app := &App{
		api:      api,
		sessions: sessions,
		in:       bufio.NewReader(in),
		out:      out,
	}
	app.readPassword = app.promptPassword

	return app
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string) error
}

func (a *App) commands() []command {
	return []command{
		{"signup", "create a student or recruiter account", a.signUp},
		{"login", "sign in and save the session", a.login},
		{"logout", "revoke and forget the saved session", a.logout},
		{"whoami", "show the signed-in account", a.whoami},
		{"profile", "show or update your student profile", a.profile},
		{"candidates", "search the student directory (recruiters)", a.candidates},
		{"hire", "record a hire (recruiters)", a.hire},
		{"hires", "list your hiring records (recruiters)", a.hires},
		{"hired", "check whether you hired an email (recruiters)", a.hired},
		{"stats", "show hiring totals and majors (recruiters)", a.stats},
	}
}

// Run executes the command named by args[0].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()

		return nil
	}

	for _, cmd := range a.commands() {
		if cmd.name == args[0] {
			return cmd.run(ctx, args[1:])
		}
	}
	a.usage()

	return errors.Wrapf(ErrUsage, "unknown command %q", args[0])
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "Usage: recruitctl <command> [flags]")
	fmt.Fprintln(a.out)
	for _, cmd := range a.commands() {
		fmt.Fprintf(a.out, "  %-11s %s\n", cmd.name, cmd.summary)
	}
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)

	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(ErrUsage, err.Error())
	}
	if fs.NArg() > 0 {
		return errors.Wrapf(ErrUsage, "unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	return nil
}

// resume loads the saved token and re-fetches its account from the server,
// then applies the role guard. The account on disk is never trusted.
func (a *App) resume(ctx context.Context, role entity.Role) (entity.Account, string, error) {
	token, err := a.sessions.LoadToken()
	if err != nil {
		return nil, "", err
	}
	if token == "" {
		return nil, "", ErrNotSignedIn
	}

	account, err := a.api.Me(ctx, token)
	if client.IsUnauthorized(err) {
		if forgetErr := a.sessions.Forget(); forgetErr != nil {
			return nil, "", forgetErr
		}

		return nil, "", errors.Wrap(ErrNotSignedIn, "saved session expired")
	}
	if err != nil {
		return nil, "", err
	}
	a.sessions.Set(account, token)

	if role == "" {
		return account, token, nil
	}

	account, err = a.sessions.Require(role)
	if err != nil {
		return nil, "", errors.Wrapf(err, "this command is for %ss", role)
	}

	return account, token, nil
}

func (a *App) startSession(sess *client.Session) error {
	a.sessions.Set(sess.Account, sess.Token)
	if err := a.sessions.Save(); err != nil {
		return err
	}

	user := sess.Account.Identity()
	fmt.Fprintf(a.out, "Signed in as %s (%s), session valid until %s\n",
		user.Email, sess.Account.Role(), sess.ExpiresAt.Local().Format("2006-01-02 15:04"))

	return nil
}

func (a *App) promptPassword() (string, error) {
	fmt.Fprint(a.out, "Password: ")
	defer fmt.Fprintln(a.out)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pw, err := term.ReadPassword(fd)
		if err != nil {
			return "", errors.WithStack(err)
		}

		return string(pw), nil
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrap(err, "read password")
	}

	return strings.TrimRight(line, "\r\n"), nil
}
