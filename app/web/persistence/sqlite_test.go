package persistence

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/jobboard/app/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewSQLiteStore(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		assert.NotNil(t, store)
		require.NoError(t, store.Close())
	})

	t.Run("invalid path", func(t *testing.T) {
		store, err := NewSQLiteStore("/invalid/path/that/does/not/exist/test.db")
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("reopen keeps data", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "test.db")
		store, err := NewSQLiteStore(dbPath)
		require.NoError(t, err)
		_, err = store.CreateJob(t.Context(), domain.NewJob{Title: "t", Company: "c", Location: "l", Contract: "x"})
		require.NoError(t, err)
		require.NoError(t, store.Close())

		store, err = NewSQLiteStore(dbPath)
		require.NoError(t, err)
		defer store.Close()
		jobs, err := store.ListJobs(t.Context())
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})
}

func TestSQLiteStore_TablesCreated(t *testing.T) {
	store := newTestStore(t)
	for _, table := range []string{"jobs", "applications", "messages"} {
		var count int
		err := store.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, table)
	}
}

func TestSQLiteStore_WALMode(t *testing.T) {
	store := newTestStore(t)
	var mode string
	err := store.db.QueryRow("PRAGMA journal_mode").Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "wal", mode)
}

func TestSQLiteStore_Jobs(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)

	id, err := store.CreateJob(ctx, domain.NewJob{Title: "Frontend Developer", Company: "TechCorp",
		Location: "Milano", Contract: "Full-time"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id2, err := store.CreateJob(ctx, domain.NewJob{Title: "Backend Engineer", Company: "DataWorks",
		Location: "Roma", Contract: "Full-time"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	jobs, err = store.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, domain.Job{ID: 1, Title: "Frontend Developer", Company: "TechCorp", Location: "Milano",
		Contract: "Full-time"}, jobs[0])
	assert.Equal(t, "Backend Engineer", jobs[1].Title)
}

func TestSQLiteStore_EnsureSeeded(t *testing.T) {
	t.Run("seeds empty store in order", func(t *testing.T) {
		store := newTestStore(t)
		seeded, err := store.EnsureSeeded(t.Context(), domain.DefaultJobs())
		require.NoError(t, err)
		assert.True(t, seeded)

		jobs, err := store.ListJobs(t.Context())
		require.NoError(t, err)
		require.Len(t, jobs, 2)
		assert.Equal(t, "Frontend Developer", jobs[0].Title)
		assert.Equal(t, "TechCorp", jobs[0].Company)
		assert.Equal(t, "Backend Engineer", jobs[1].Title)
		assert.Equal(t, "DataWorks", jobs[1].Company)

		seeded, err = store.EnsureSeeded(t.Context(), domain.DefaultJobs())
		require.NoError(t, err)
		assert.False(t, seeded, "second seed should be a no-op")
		jobs, err = store.ListJobs(t.Context())
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("non-empty store is left alone", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.CreateJob(t.Context(), domain.NewJob{Title: "t", Company: "c", Location: "l", Contract: "x"})
		require.NoError(t, err)
		seeded, err := store.EnsureSeeded(t.Context(), domain.DefaultJobs())
		require.NoError(t, err)
		assert.False(t, seeded)
		jobs, err := store.ListJobs(t.Context())
		require.NoError(t, err)
		assert.Len(t, jobs, 1)
	})

	t.Run("concurrent seeding inserts once", func(t *testing.T) {
		store := newTestStore(t)
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.EnsureSeeded(context.Background(), domain.DefaultJobs())
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		jobs, err := store.ListJobs(t.Context())
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("nothing to seed", func(t *testing.T) {
		store := newTestStore(t)
		_, err := store.EnsureSeeded(t.Context(), nil)
		assert.ErrorIs(t, err, ErrNoSeed)
	})
}

func TestSQLiteStore_Applications(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	apps, err := store.ListApplications(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)

	submitted := []domain.NewApplication{
		{JobID: 1, CandidateName: "Mario Rossi", CandidateEmail: "mario@example.com"},
		{JobID: 2, CandidateName: "Anna Bianchi", CandidateEmail: "anna@example.com"},
		{JobID: 1, CandidateName: "Anna Bianchi", CandidateEmail: "anna@example.com"},
		{JobID: 1, CandidateName: "Mario Rossi", CandidateEmail: "mario@example.com"}, // duplicate is kept
	}
	ids := make([]int64, 0, len(submitted))
	for _, a := range submitted {
		id, err := store.Apply(ctx, a)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	apps, err = store.ListApplications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, domain.Application{ID: 1, JobID: 1, CandidateName: "Mario Rossi",
		CandidateEmail: "mario@example.com"}, apps[0])
	assert.Equal(t, int64(3), apps[1].ID)
	assert.Equal(t, int64(4), apps[2].ID)
	assert.Equal(t, apps[0].CandidateEmail, apps[2].CandidateEmail, "no deduplication")

	apps, err = store.ListApplications(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	// applications don't require the job to exist
	apps, err = store.ListApplications(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestSQLiteStore_Messages(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	before := time.Now().Add(-time.Second)
	id, err := store.SendMessage(ctx, domain.NewMessage{JobID: 1, SenderEmail: "a@x.com",
		ReceiverEmail: "b@x.com", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	for _, email := range []string{"a@x.com", "b@x.com"} {
		msgs, err := store.ListMessages(ctx, 1, email)
		require.NoError(t, err)
		require.Len(t, msgs, 1, email)
		assert.Equal(t, int64(1), msgs[0].JobID)
		assert.Equal(t, "a@x.com", msgs[0].SenderEmail)
		assert.Equal(t, "b@x.com", msgs[0].ReceiverEmail)
		assert.Equal(t, "hi", msgs[0].Text)
		assert.WithinDuration(t, time.Now(), msgs[0].Timestamp, time.Minute)
		assert.True(t, msgs[0].Timestamp.After(before))
	}

	msgs, err := store.ListMessages(ctx, 2, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, msgs, "other job has no messages")

	msgs, err = store.ListMessages(ctx, 1, "c@x.com")
	require.NoError(t, err)
	assert.Empty(t, msgs, "not a participant")
}

func TestSQLiteStore_MessagesOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	for i := range 20 {
		from, to := "hr@techcorp.com", "mario@example.com"
		if i%2 == 1 {
			from, to = to, from
		}
		_, err := store.SendMessage(ctx, domain.NewMessage{JobID: 1, SenderEmail: from, ReceiverEmail: to,
			Text: fmt.Sprintf("msg %d", i)})
		require.NoError(t, err)
	}

	// a message stored with a timestamp in the future, the next insert must not go below it
	future := time.Now().Add(time.Hour).UnixMilli()
	_, err := store.db.Exec(`INSERT INTO messages (job_id, sender_email, receiver_email, text, timestamp)
		VALUES (1, 'hr@techcorp.com', 'mario@example.com', 'future', ?)`, future)
	require.NoError(t, err)
	_, err = store.SendMessage(ctx, domain.NewMessage{JobID: 1, SenderEmail: "mario@example.com",
		ReceiverEmail: "hr@techcorp.com", Text: "last"})
	require.NoError(t, err)

	msgs, err := store.ListMessages(ctx, 1, "mario@example.com")
	require.NoError(t, err)
	require.Len(t, msgs, 22)
	for i := 1; i < len(msgs); i++ {
		assert.False(t, msgs[i].Timestamp.Before(msgs[i-1].Timestamp), "timestamps must be non-decreasing")
		assert.Greater(t, msgs[i].ID, msgs[i-1].ID)
	}
	assert.Equal(t, "msg 0", msgs[0].Text)
	assert.Equal(t, "last", msgs[21].Text)
}

func TestSQLiteStore_ListThread(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	sends := []domain.NewMessage{
		{JobID: 1, SenderEmail: "hr@techcorp.com", ReceiverEmail: "mario@example.com", Text: "hello mario"},
		{JobID: 1, SenderEmail: "hr@techcorp.com", ReceiverEmail: "anna@example.com", Text: "hello anna"},
		{JobID: 1, SenderEmail: "mario@example.com", ReceiverEmail: "hr@techcorp.com", Text: "hi"},
	}
	for _, m := range sends {
		_, err := store.SendMessage(ctx, m)
		require.NoError(t, err)
	}

	// participant query merges all counterparts
	msgs, err := store.ListMessages(ctx, 1, "hr@techcorp.com")
	require.NoError(t, err)
	assert.Len(t, msgs, 3)

	// thread query keeps the pair only
	msgs, err = store.ListThread(ctx, 1, "hr@techcorp.com", "mario@example.com")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hello mario", msgs[0].Text)
	assert.Equal(t, "hi", msgs[1].Text)

	msgs, err = store.ListThread(ctx, 1, "anna@example.com", "hr@techcorp.com")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello anna", msgs[0].Text)
}

func TestSQLiteStore_Errors(t *testing.T) {
	store := newTestStore(t)
	ctx := t.Context()

	for _, table := range []string{"jobs", "applications", "messages"} {
		_, err := store.db.Exec("DROP TABLE " + table)
		require.NoError(t, err)
	}

	_, err := store.ListJobs(ctx)
	assert.ErrorContains(t, err, "failed to query jobs")
	_, err = store.CreateJob(ctx, domain.NewJob{Title: "t"})
	assert.ErrorContains(t, err, "failed to insert job")
	_, err = store.EnsureSeeded(ctx, domain.DefaultJobs())
	assert.ErrorContains(t, err, "failed to seed jobs")
	_, err = store.Apply(ctx, domain.NewApplication{JobID: 1})
	assert.ErrorContains(t, err, "failed to insert application")
	_, err = store.ListApplications(ctx, 1)
	assert.ErrorContains(t, err, "failed to query applications for job 1")
	_, err = store.SendMessage(ctx, domain.NewMessage{JobID: 1})
	assert.ErrorContains(t, err, "failed to insert message")
	_, err = store.ListMessages(ctx, 1, "a@x.com")
	assert.ErrorContains(t, err, "failed to query messages for job 1")
	_, err = store.ListThread(ctx, 1, "a@x.com", "b@x.com")
	assert.ErrorContains(t, err, "failed to query thread for job 1")
}
