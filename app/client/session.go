// Package client implements the job board client: a typed http api client and a Session
// keeping jobs, applications and conversations in sync with the server.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater"
	"github.com/go-pkgz/repeater/strategy"
	"github.com/go-pkgz/syncs"

	"github.com/umputun/jobboard/app/directory"
	"github.com/umputun/jobboard/app/domain"
)

// errors returned by Session
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("not logged in")
	ErrAlreadyLoggedIn    = errors.New("already logged in")
	ErrWrongRole          = errors.New("operation not allowed for this role")
)

// View is the client view selected by login
type View int

// enum of all views. Transitions go from ViewUnauthenticated to one of the others only.
const (
	ViewUnauthenticated View = iota
	ViewCandidate
	ViewCompany
)

func (v View) String() string {
	switch v {
	case ViewUnauthenticated:
		return "unauthenticated"
	case ViewCandidate:
		return "candidate"
	case ViewCompany:
		return "company"
	default:
		return "unknown"
	}
}

// Repeater defines interface for retrying the initial load
type Repeater interface {
	Do(ctx context.Context, fun func() error, errors ...error) error
}

//go:generate moq -out mocks/board_api.go -pkg mocks -skip-ensure -fmt goimports . BoardAPI

// BoardAPI defines server operations used by Session, implemented by API
type BoardAPI interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	SeedJobs(ctx context.Context, jobs []domain.NewJob) (domain.SeedResult, error)
	Apply(ctx context.Context, app domain.NewApplication) (int64, error)
	ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error)
	SendMessage(ctx context.Context, msg domain.NewMessage) (int64, error)
	ListMessages(ctx context.Context, jobID int64, userEmail, with string) ([]domain.Message, error)
}

// Conversation identifies a thread: a job and the other participant
type Conversation struct {
	JobID       int64
	Counterpart string
}

// Session keeps client state: logged in user, jobs and conversation logs
type Session struct {
	api         BoardAPI
	dir         directory.Directory
	rptr        Repeater
	concurrency int

	mu      sync.Mutex
	user    directory.User
	view    View
	jobs    []domain.Job
	threads map[Conversation]*Thread
	active  Conversation
}

// Option func type
type Option func(s *Session)

// WithRepeater sets repeater used for the initial jobs fetch
func WithRepeater(r Repeater) Option {
	return func(s *Session) { s.rptr = r }
}

// WithConcurrency sets how many applications requests run in parallel
func WithConcurrency(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewSession makes an unauthenticated session
func NewSession(api BoardAPI, dir directory.Directory, opts ...Option) *Session {
	res := &Session{
		api:         api,
		dir:         dir,
		rptr:        repeater.New(&strategy.Backoff{Repeats: 5, Duration: 200 * time.Millisecond, Factor: 2}),
		concurrency: 4,
		threads:     make(map[Conversation]*Thread),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Login authenticates against the directory and selects the view by role
func (s *Session) Login(email, password string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewUnauthenticated {
		return s.view, ErrAlreadyLoggedIn
	}

	user, ok := s.dir.Authenticate(email, password)
	if !ok {
		return ViewUnauthenticated, ErrInvalidCredentials
	}

	switch user.Role {
	case directory.RoleCandidate:
		s.view = ViewCandidate
	case directory.RoleCompany:
		s.view = ViewCompany
	default:
		return ViewUnauthenticated, fmt.Errorf("unsupported role %q", user.Role)
	}
	s.user = user
	log.Printf("[INFO] logged in as %s (%s), view %s", user.Name, user.Email, s.view)
	return s.view, nil
}

// View returns the current view
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// User returns the logged in user
func (s *Session) User() (directory.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.view != ViewUnauthenticated
}

// Load fetches jobs and seeds the default ones if the board is empty.
// Seeding is a single idempotent server call, concurrent first loads don't duplicate jobs.
func (s *Session) Load(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	var apiErr *APIError
	err := s.rptr.Do(ctx, func() error {
		res, err := s.api.ListJobs(ctx)
		if err != nil {
			if errors.As(err, &apiErr) {
				return nil // server answered, retry won't help
			}
			log.Printf("[DEBUG] failed to load jobs, %v", err)
			return err
		}
		jobs, apiErr = res, nil
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}
	if apiErr != nil {
		return nil, fmt.Errorf("failed to load jobs: %w", apiErr)
	}

	if len(jobs) == 0 {
		res, err := s.api.SeedJobs(ctx, domain.DefaultJobs())
		if err != nil {
			return nil, fmt.Errorf("failed to seed jobs: %w", err)
		}
		log.Printf("[DEBUG] seed requested, inserted: %v", res.Seeded)
		jobs = res.Jobs
	}

	s.mu.Lock()
	s.jobs = jobs
	s.mu.Unlock()
	return s.Jobs(), nil
}

// Jobs returns loaded jobs
func (s *Session) Jobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]domain.Job, len(s.jobs))
	copy(res, s.jobs)
	return res
}

// CompanyJobs returns loaded jobs posted by the logged in company
func (s *Session) CompanyJobs() []domain.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := []domain.Job{}
	if s.view != ViewCompany {
		return res
	}
	for _, j := range s.jobs {
		if j.Company == s.user.Name {
			res = append(res, j)
		}
	}
	return res
}

// Apply submits an application of the logged in candidate
func (s *Session) Apply(ctx context.Context, jobID int64) (int64, error) {
	user, err := s.requireView(ViewCandidate)
	if err != nil {
		return 0, err
	}
	id, err := s.api.Apply(ctx, domain.NewApplication{JobID: jobID, CandidateName: user.Name,
		CandidateEmail: user.Email})
	if err != nil {
		return 0, fmt.Errorf("failed to apply to job %d: %w", jobID, err)
	}
	return id, nil
}

// Applications loads applications for all jobs of the logged in company, keyed by job id
func (s *Session) Applications(ctx context.Context) (map[int64][]domain.Application, error) {
	if _, err := s.requireView(ViewCompany); err != nil {
		return nil, err
	}

	jobs := s.CompanyJobs()
	res := make(map[int64][]domain.Application, len(jobs))
	var resMu sync.Mutex
	var firstErr error

	gr := syncs.NewSizedGroup(s.concurrency, syncs.Context(ctx))
	for _, j := range jobs {
		gr.Go(func(ctx context.Context) {
			apps, err := s.api.ListApplications(ctx, j.ID)
			resMu.Lock()
			defer resMu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("failed to load applications for job %d: %w", j.ID, err)
				}
				return
			}
			res[j.ID] = apps
		})
	}
	gr.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	// canceled group skips the remaining jobs without calling them
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("applications loading interrupted: %w", err)
	}
	return res, nil
}

// SelectConversation makes the conversation active and merges its server history into the local log
func (s *Session) SelectConversation(ctx context.Context, jobID int64, counterpart string) ([]Entry, error) {
	user, err := s.requireLogin()
	if err != nil {
		return nil, err
	}
	conv := Conversation{JobID: jobID, Counterpart: counterpart}
	s.mu.Lock()
	s.active = conv
	s.mu.Unlock()

	msgs, err := s.api.ListMessages(ctx, jobID, user.Email, counterpart)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation with %s: %w", counterpart, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	th := s.thread(conv)
	th.merge(msgs)
	return th.Entries(), nil
}

// Active returns the selected conversation
func (s *Session) Active() (Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != Conversation{}
}

// Send appends a pending entry, persists the message and confirms the entry with the server id.
// On failure the entry stays in the log marked as failed.
func (s *Session) Send(ctx context.Context, jobID int64, counterpart, text string) (Entry, error) {
	user, err := s.requireLogin()
	if err != nil {
		return Entry{}, err
	}
	conv := Conversation{JobID: jobID, Counterpart: counterpart}

	s.mu.Lock()
	localID := s.thread(conv).addPending(jobID, user.Email, counterpart, text)
	s.mu.Unlock()

	id, sendErr := s.api.SendMessage(ctx, domain.NewMessage{JobID: jobID, SenderEmail: user.Email,
		ReceiverEmail: counterpart, Text: text})

	s.mu.Lock()
	defer s.mu.Unlock()
	th := s.thread(conv)
	if sendErr != nil {
		e, _ := th.fail(localID)
		return e, fmt.Errorf("failed to send message to %s: %w", counterpart, sendErr)
	}
	e, _ := th.confirm(localID, id)
	return e, nil
}

// Thread returns a snapshot of the local log of a conversation
func (s *Session) Thread(jobID int64, counterpart string) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	th, ok := s.threads[Conversation{JobID: jobID, Counterpart: counterpart}]
	if !ok {
		return []Entry{}
	}
	return th.Entries()
}

// StartCall is a placeholder for calling a counterpart, nothing is dialed
func (s *Session) StartCall(name string) string {
	return fmt.Sprintf("simulated call with %s", name)
}

// thread returns the log of a conversation, creating it if needed. Caller must hold s.mu.
func (s *Session) thread(conv Conversation) *Thread {
	th, ok := s.threads[conv]
	if !ok {
		th = &Thread{}
		s.threads[conv] = th
	}
	return th
}

func (s *Session) requireLogin() (directory.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewUnauthenticated {
		return directory.User{}, ErrNotLoggedIn
	}
	return s.user, nil
}

func (s *Session) requireView(v View) (directory.User, error) {
	user, err := s.requireLogin()
	if err != nil {
		return user, err
	}
	if s.View() != v {
		return directory.User{}, fmt.Errorf("%w: requires %s view", ErrWrongRole, v)
	}
	return user, nil
}
