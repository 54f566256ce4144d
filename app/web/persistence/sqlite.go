package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver

	"github.com/umputun/jobboard/app/domain"
)

// ErrNoSeed returned by EnsureSeeded when called without jobs to insert
var ErrNoSeed = errors.New("no seed jobs")

// nowMillis is the sql expression for the current unix time in milliseconds
const nowMillis = `CAST((julianday('now') - 2440587.5) * 86400000.0 AS INTEGER)`

// SQLiteStore implements persistence using SQLite
type SQLiteStore struct {
	db *sqlx.DB
}

// messageRow is the database representation of domain.Message, timestamp kept as unix millis
type messageRow struct {
	ID            int64  `db:"id"`
	JobID         int64  `db:"job_id"`
	SenderEmail   string `db:"sender_email"`
	ReceiverEmail string `db:"receiver_email"`
	Text          string `db:"text"`
	Timestamp     int64  `db:"timestamp"`
}

func (m messageRow) toMessage() domain.Message {
	return domain.Message{
		ID:            m.ID,
		JobID:         m.JobID,
		SenderEmail:   m.SenderEmail,
		ReceiverEmail: m.ReceiverEmail,
		Text:          m.Text,
		Timestamp:     time.UnixMilli(m.Timestamp).UTC(),
	}
}

// NewSQLiteStore opens (or creates) the database at dbPath and initializes the schema
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers anyway, a single connection avoids SQLITE_BUSY between our own statements
	db.SetMaxOpenConns(1)

	pragmas := []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			if closeErr := db.Close(); closeErr != nil {
				return nil, fmt.Errorf("failed to execute %q: %w (also failed to close db: %v)", p, err, closeErr)
			}
			return nil, fmt.Errorf("failed to execute %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.initialize(); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close db: %v)", err, closeErr)
		}
		return nil, err
	}
	return s, nil
}

// initialize creates the database schema. No foreign keys, applications and messages
// may reference jobs which don't exist.
func (s *SQLiteStore) initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL DEFAULT '',
			company TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			contract TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id INTEGER NOT NULL,
			candidate_name TEXT NOT NULL DEFAULT '',
			candidate_email TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			job_id INTEGER NOT NULL,
			sender_email TEXT NOT NULL DEFAULT '',
			receiver_email TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL DEFAULT '',
			timestamp INTEGER NOT NULL DEFAULT (` + nowMillis + `)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_job_id ON applications(job_id)`,
		`CREATE INDEX IF NOT EXISTS idx_messages_job_id_timestamp ON messages(job_id, timestamp)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

// ListJobs retrieves all jobs in insertion order
func (s *SQLiteStore) ListJobs(ctx context.Context) ([]domain.Job, error) {
	jobs := []domain.Job{}
	if err := s.db.SelectContext(ctx, &jobs,
		`SELECT id, title, company, location, contract FROM jobs ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	return jobs, nil
}

// CreateJob inserts a job and returns its generated id
func (s *SQLiteStore) CreateJob(ctx context.Context, job domain.NewJob) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO jobs (title, company, location, contract) VALUES (?, ?, ?, ?)`,
		job.Title, job.Company, job.Location, job.Contract)
	if err != nil {
		return 0, fmt.Errorf("failed to insert job: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get job id: %w", err)
	}
	return id, nil
}

// EnsureSeeded inserts all jobs in one statement, only if the jobs table is empty.
// Returns true if jobs were inserted. Concurrent callers can't seed twice because
// the emptiness check and the insert are the same statement.
func (s *SQLiteStore) EnsureSeeded(ctx context.Context, jobs []domain.NewJob) (bool, error) {
	if len(jobs) == 0 {
		return false, ErrNoSeed
	}

	values := make([]string, 0, len(jobs))
	args := make([]any, 0, len(jobs)*4)
	for _, j := range jobs {
		values = append(values, "(?, ?, ?, ?)")
		args = append(args, j.Title, j.Company, j.Location, j.Contract)
	}

	query := `INSERT INTO jobs (title, company, location, contract)
		SELECT column1, column2, column3, column4 FROM (VALUES ` + strings.Join(values, ", ") + `)
		WHERE NOT EXISTS (SELECT 1 FROM jobs)`

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to seed jobs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get seeded rows: %w", err)
	}
	if n > 0 {
		log.Printf("[INFO] seeded %d jobs", n)
	}
	return n > 0, nil
}

// Apply records an application. The job is not checked for existence.
func (s *SQLiteStore) Apply(ctx context.Context, app domain.NewApplication) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (job_id, candidate_name, candidate_email) VALUES (?, ?, ?)`,
		app.JobID, app.CandidateName, app.CandidateEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to insert application: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get application id: %w", err)
	}
	return id, nil
}

// ListApplications retrieves applications for a job in submission order
func (s *SQLiteStore) ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	apps := []domain.Application{}
	err := s.db.SelectContext(ctx, &apps,
		`SELECT id, job_id, candidate_name, candidate_email FROM applications WHERE job_id = ? ORDER BY id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications for job %d: %w", jobID, err)
	}
	return apps, nil
}

// SendMessage inserts a message with a store-assigned timestamp. The timestamp never goes below
// the latest stored one, so insert order and timestamp order agree even if the clock steps back.
func (s *SQLiteStore) SendMessage(ctx context.Context, msg domain.NewMessage) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO messages (job_id, sender_email, receiver_email, text, timestamp)
		SELECT ?, ?, ?, ?, MAX(`+nowMillis+`, COALESCE((SELECT MAX(timestamp) FROM messages), 0))`,
		msg.JobID, msg.SenderEmail, msg.ReceiverEmail, msg.Text)
	if err != nil {
		return 0, fmt.Errorf("failed to insert message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get message id: %w", err)
	}
	return id, nil
}

// ListMessages retrieves all messages of a job where userEmail is sender or receiver,
// oldest first. Messages with every counterpart of userEmail are returned as one list.
func (s *SQLiteStore) ListMessages(ctx context.Context, jobID int64, userEmail string) ([]domain.Message, error) {
	rows := []messageRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, job_id, sender_email, receiver_email, text, timestamp FROM messages
		WHERE job_id = ? AND (sender_email = ? OR receiver_email = ?)
		ORDER BY timestamp, id`, jobID, userEmail, userEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for job %d: %w", jobID, err)
	}
	return toMessages(rows), nil
}

// ListThread retrieves messages of a job exchanged between exactly two participants, oldest first
func (s *SQLiteStore) ListThread(ctx context.Context, jobID int64, a, b string) ([]domain.Message, error) {
	rows := []messageRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, job_id, sender_email, receiver_email, text, timestamp FROM messages
		WHERE job_id = ? AND ((sender_email = ? AND receiver_email = ?) OR (sender_email = ? AND receiver_email = ?))
		ORDER BY timestamp, id`, jobID, a, b, b, a)
	if err != nil {
		return nil, fmt.Errorf("failed to query thread for job %d: %w", jobID, err)
	}
	return toMessages(rows), nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func toMessages(rows []messageRow) []domain.Message {
	res := make([]domain.Message, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.toMessage())
	}
	return res
}
