package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"recruit/internal/client"
	"recruit/internal/domain/entity"
	"recruit/internal/errors"
)

func (a *App) signUp(ctx context.Context, args []string) error {
	fs := a.newFlagSet("signup")
	req := &client.SignUpRequest{}
	role := fs.String("role", "student", "student or recruiter")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.Name, "name", "", "full name")
	fs.StringVar(&req.School, "school", "", "school (students)")
	fs.StringVar(&req.Company, "company", "", "company name (recruiters)")
	fs.StringVar(&req.CompanyKey, "key", "", "9-character company key (recruiters)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	req.Role = entity.Role(*role)
	if !req.Role.IsValid() {
		return errors.Wrapf(ErrUsage, "unknown role %q", *role)
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}
	req.Password = password

	sess, err := a.api.SignUp(ctx, req)
	if err != nil {
		return err
	}

	return a.startSession(sess)
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.newFlagSet("login")
	email := fs.String("email", "", "email address")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *email == "" {
		return errors.Wrap(ErrUsage, "-email is required")
	}

	password, err := a.readPassword()
	if err != nil {
		return err
	}

	sess, err := a.api.Login(ctx, *email, password)
	if err != nil {
		return err
	}

	return a.startSession(sess)
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("logout"), args); err != nil {
		return err
	}

	token, err := a.sessions.LoadToken()
	if err != nil {
		return err
	}
	if token != "" {
		if err := a.api.Logout(ctx, token); err != nil && !client.IsUnauthorized(err) {
			return err
		}
	}
	if err := a.sessions.Forget(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out")

	return nil
}

func (a *App) whoami(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("whoami"), args); err != nil {
		return err
	}

	account, _, err := a.resume(ctx, "")
	if err != nil {
		return err
	}

	user := account.Identity()
	fmt.Fprintf(a.out, "%s <%s>\nrole: %s\n", user.Name, user.Email, account.Role())
	switch acc := account.(type) {
	case *entity.StudentAccount:
		fmt.Fprintf(a.out, "school: %s\n", acc.Profile.School)
	case *entity.RecruiterAccount:
		fmt.Fprintf(a.out, "company: %s\n", acc.Profile.Company)
	}

	return nil
}

// profile shows the student profile, or updates the fields given as flags.
func (a *App) profile(ctx context.Context, args []string) error {
	fs := a.newFlagSet("profile")
	stringFields := map[string]*string{}
	for _, name := range []string{"school", "major", "secondary_major", "graduation_year", "year_entered", "phone", "location", "skills", "experience", "projects"} {
		stringFields[name] = fs.String(name, "", "set "+strings.ReplaceAll(name, "_", " "))
	}
	gpa := fs.Float64("gpa", -1, "set GPA (0-4)")
	clearGPA := fs.Bool("clear-gpa", false, "remove the stored GPA")
	visa := fs.String("visa", "", "set visa statuses, comma separated")
	cycles := fs.String("cycles", "", "set available cycles, comma separated")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	_, token, err := a.resume(ctx, entity.RoleStudent)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "gpa":
			fields["gpa"] = *gpa
		case "clear-gpa":
			fields["clear_gpa"] = *clearGPA
		case "visa":
			fields["visa_status"] = splitList(*visa)
		case "cycles":
			fields["cycles_available"] = splitList(*cycles)
		default:
			fields[f.Name] = *stringFields[f.Name]
		}
	})

	var profile *entity.StudentProfile
	if len(fields) == 0 {
		profile, err = a.api.GetProfile(ctx, token)
	} else {
		profile, err = a.api.UpdateProfile(ctx, token, fields)
	}
	if err != nil {
		return err
	}

	return a.printJSON(profile)
}

func (a *App) candidates(ctx context.Context, args []string) error {
	fs := a.newFlagSet("candidates")
	q := &client.CandidateQuery{}
	fs.StringVar(&q.Name, "name", "", "name contains")
	fs.StringVar(&q.Search, "search", "", "free text over name, email, major and skills")
	fs.StringVar(&q.Major, "major", "", "exact major")
	fs.StringVar(&q.GraduationYear, "grad", "", "exact graduation year token")
	fs.StringVar(&q.School, "school", "", "exact school")
	visa := fs.String("visa", "", "visa statuses, comma separated (any matches)")
	fs.StringVar(&q.SortBy, "sort", "", "name, email, major, gpa or graduation_year")
	fs.StringVar(&q.SortOrder, "order", "", "asc or desc")
	fs.IntVar(&q.Page, "page", 0, "page number, from 1")
	fs.IntVar(&q.PageSize, "size", 0, "page size")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	q.VisaStatuses = splitList(*visa)

	_, token, err := a.resume(ctx, entity.RoleRecruiter)
	if err != nil {
		return err
	}

	page, err := a.api.SearchCandidates(ctx, token, q)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tMAJOR\tGPA\tGRADUATION\tVISA")
	for _, c := range page.Candidates {
		gpa := "-"
		if c.Profile.GPA != nil {
			gpa = fmt.Sprintf("%.2f", *c.Profile.GPA)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Name, c.Email, c.Profile.Major, gpa, c.Profile.GraduationYear, strings.Join(c.Profile.VisaStatus, ","))
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(a.out, "%d of %d students match (page %d, size %d)\n", page.MatchedCount, page.TotalCount, page.Page, page.PageSize)

	return nil
}

func (a *App) hire(ctx context.Context, args []string) error {
	fs := a.newFlagSet("hire")
	req := &client.HireRequest{}
	fs.StringVar(&req.StudentEmail, "email", "", "student email")
	fs.StringVar(&req.StudentName, "name", "", "student name, taken from the account when empty")
	fs.StringVar(&req.PositionTitle, "position", "", "position title")
	fs.StringVar(&req.Cycle, "cycle", "", "hiring cycle, e.g. 'Summer 2026'")
	fs.StringVar(&req.Notes, "notes", "", "notes")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if req.StudentEmail == "" || req.Cycle == "" {
		return errors.Wrap(ErrUsage, "-email and -cycle are required")
	}

	_, token, err := a.resume(ctx, entity.RoleRecruiter)
	if err != nil {
		return err
	}

	record, err := a.api.RecordHire(ctx, token, req)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded hire %s: %s <%s> for %s\n", record.ID, record.StudentName, record.StudentEmail, record.Cycle)

	return nil
}

func (a *App) hires(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("hires"), args); err != nil {
		return err
	}

	_, token, err := a.resume(ctx, entity.RoleRecruiter)
	if err != nil {
		return err
	}

	records, err := a.api.ListHires(ctx, token)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSTUDENT\tEMAIL\tPOSITION\tCYCLE\tSTATUS")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.HireDate.Format("2006-01-02"), r.StudentName, r.StudentEmail, r.PositionTitle, r.Cycle, r.Status)
	}

	return errors.WithStack(tw.Flush())
}

func (a *App) hired(ctx context.Context, args []string) error {
	fs := a.newFlagSet("hired")
	email := fs.String("email", "", "student email")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *email == "" {
		return errors.Wrap(ErrUsage, "-email is required")
	}

	_, token, err := a.resume(ctx, entity.RoleRecruiter)
	if err != nil {
		return err
	}

	hired, err := a.api.IsHired(ctx, token, *email)
	if err != nil {
		return err
	}
	if hired {
		fmt.Fprintf(a.out, "%s is hired\n", *email)
	} else {
		fmt.Fprintf(a.out, "%s is not hired\n", *email)
	}

	return nil
}

func (a *App) stats(ctx context.Context, args []string) error {
	if err := parseFlags(a.newFlagSet("stats"), args); err != nil {
		return err
	}

	_, token, err := a.resume(ctx, entity.RoleRecruiter)
	if err != nil {
		return err
	}

	stats, err := a.api.Stats(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Students: %d\nHired: %d (%.1f%% of registered students)\n\n",
		stats.TotalStudents, stats.StudentsHired, stats.HiringRate)

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MAJOR\tSTUDENTS\tSHARE")
	for _, m := range stats.Majors {
		if m.Count == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\n", m.Major, m.Count, m.Percentage)
	}
	if stats.Undeclared > 0 {
		fmt.Fprintf(tw, "(undeclared)\t%d\t\n", stats.Undeclared)
	}

	return errors.WithStack(tw.Flush())
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return errors.WithStack(enc.Encode(v))
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
