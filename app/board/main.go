// board is a command line client of the job board server
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/umputun/go-flags"

	"github.com/umputun/jobboard/app/client"
	"github.com/umputun/jobboard/app/directory"
)

type options struct {
	Server   string        `short:"s" long:"server" env:"BOARD_SERVER" default:"http://localhost:4000" description:"board server url"`
	Users    string        `short:"u" long:"users" env:"BOARD_USERS" description:"users yaml file, demo users if not set"`
	Email    string        `short:"e" long:"email" env:"BOARD_EMAIL" required:"true" description:"login email"`
	Password string        `short:"p" long:"password" env:"BOARD_PASSWORD" required:"true" description:"login password"`
	Timeout  time.Duration `long:"timeout" env:"BOARD_TIMEOUT" default:"10s" description:"request timeout"`
	Dbg      bool          `long:"dbg" env:"BOARD_DEBUG" description:"debug mode"`

	Jobs         jobsCmd         `command:"jobs" description:"list jobs, company users see their own jobs only"`
	Apply        applyCmd        `command:"apply" description:"apply to a job"`
	Applications applicationsCmd `command:"applications" description:"list applications to the company jobs"`
	Send         sendCmd         `command:"send" description:"send a message"`
	Thread       threadCmd       `command:"thread" description:"show conversation with a user about a job"`
	Call         callCmd         `command:"call" description:"start a call with a user"`
}

type jobsCmd struct{ commonCmd }

type applyCmd struct {
	commonCmd
	JobID int64 `short:"j" long:"job" required:"true" description:"job id"`
}

type applicationsCmd struct{ commonCmd }

type sendCmd struct {
	commonCmd
	JobID int64  `short:"j" long:"job" required:"true" description:"job id"`
	To    string `short:"t" long:"to" required:"true" description:"receiver email"`
	Text  string `long:"text" required:"true" description:"message text"`
}

type threadCmd struct {
	commonCmd
	JobID int64  `short:"j" long:"job" required:"true" description:"job id"`
	With  string `short:"w" long:"with" required:"true" description:"counterpart email"`
}

type callCmd struct {
	commonCmd
	With string `short:"w" long:"with" required:"true" description:"counterpart name"`
}

// commonCmd carries the logged in session and output, set before Execute
type commonCmd struct {
	session *client.Session
	out     io.Writer
}

func (c *commonCmd) setup(s *client.Session, out io.Writer) {
	c.session, c.out = s, out
}

type setupper interface {
	setup(s *client.Session, out io.Writer)
}

var revision = "unknown"

func main() {
	var opts options
	p := flags.NewParser(&opts, flags.Default)
	p.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLog(opts.Dbg)
		session, err := login(opts)
		if err != nil {
			return err
		}
		if c, ok := cmd.(setupper); ok {
			c.setup(session, os.Stdout)
		}
		return cmd.Execute(args)
	}

	if _, err := p.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "board %s: %v\n", revision, err)
		os.Exit(1)
	}
}

// login makes a session for the configured user and loads jobs, seeding the board if it is empty
func login(opts options) (*client.Session, error) {
	var dir directory.Directory = directory.Demo()
	if opts.Users != "" {
		d, err := directory.Load(opts.Users)
		if err != nil {
			return nil, fmt.Errorf("failed to load users: %w", err)
		}
		dir = d
	}

	session := client.NewSession(client.NewAPI(opts.Server, nil), dir)
	if _, err := session.Login(opts.Email, opts.Password); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	if _, err := session.Load(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

// Execute lists jobs
func (c *jobsCmd) Execute(_ []string) error {
	jobs := c.session.Jobs()
	if c.session.View() == client.ViewCompany {
		jobs = c.session.CompanyJobs()
	}
	for _, j := range jobs {
		fmt.Fprintf(c.out, "%d\t%s\t%s\t%s\t%s\n", j.ID, j.Title, j.Company, j.Location, j.Contract)
	}
	return nil
}

// Execute applies the logged in candidate to a job
func (c *applyCmd) Execute(_ []string) error {
	id, err := c.session.Apply(context.Background(), c.JobID)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "application %d sent\n", id)
	return nil
}

// Execute prints applications grouped by job
func (c *applicationsCmd) Execute(_ []string) error {
	apps, err := c.session.Applications(context.Background())
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(apps))
	for id := range apps {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Fprintf(c.out, "job %d: %d application(s)\n", id, len(apps[id]))
		for _, a := range apps[id] {
			fmt.Fprintf(c.out, "  %s <%s>\n", a.CandidateName, a.CandidateEmail)
		}
	}
	return nil
}

// Execute sends a message and reports its status
func (c *sendCmd) Execute(_ []string) error {
	e, err := c.session.Send(context.Background(), c.JobID, c.To, c.Text)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "message %d %s\n", e.ID, e.Status)
	return nil
}

// Execute prints a conversation
func (c *threadCmd) Execute(_ []string) error {
	entries, err := c.session.SelectConversation(context.Background(), c.JobID, c.With)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(c.out, "no messages")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(c.out, "%s %s: %s\n", e.Timestamp.Local().Format(time.DateTime), e.From, e.Text)
	}
	return nil
}

// Execute starts a simulated call
func (c *callCmd) Execute(_ []string) error {
	if c.With == "" {
		return errors.New("empty counterpart")
	}
	fmt.Fprintln(c.out, c.session.StartCall(c.With))
	return nil
}

func setupLog(dbg bool) {
	if dbg {
		log.Setup(log.Debug, log.Msec, log.CallerFunc, log.CallerPkg, log.CallerFile)
		return
	}
	log.Setup(log.Out(io.Discard), log.Err(os.Stderr))
}
