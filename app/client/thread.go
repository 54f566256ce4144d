package client

import (
	"sort"
	"time"

	"github.com/umputun/jobboard/app/domain"
)

// Status of a thread entry
type Status int

// enum of entry statuses
const (
	StatusPending   Status = iota // sent locally, server hasn't acknowledged yet
	StatusConfirmed               // server assigned an id
	StatusFailed                  // server rejected the send or it never reached the server
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Entry is a single message in the local conversation log
type Entry struct {
	LocalID   int64     // local sequence, set for entries created by Send only
	ID        int64     // server id, zero until confirmed
	JobID     int64
	From      string
	To        string
	Text      string
	Timestamp time.Time // server timestamp, zero until seen in fetched history
	Status    Status
}

// Thread is an append-only conversation log keyed by server message id.
// Server history is merged into it, never replaces it, so in-flight sends survive a refresh.
// Thread is not thread-safe, Session serializes access.
type Thread struct {
	entries   []Entry
	nextLocal int64
}

// addPending appends an optimistic entry and returns its local id
func (t *Thread) addPending(jobID int64, from, to, text string) int64 {
	t.nextLocal++
	t.entries = append(t.entries, Entry{LocalID: t.nextLocal, JobID: jobID, From: from, To: to, Text: text,
		Status: StatusPending})
	return t.nextLocal
}

// confirm sets server id of a pending entry. If a history merge already brought the same
// message in, the optimistic copy is dropped in favor of the merged one.
func (t *Thread) confirm(localID, id int64) (Entry, bool) {
	if t.indexByID(id) >= 0 {
		if li := t.indexByLocal(localID); li >= 0 {
			t.entries = append(t.entries[:li], t.entries[li+1:]...)
		}
		idx := t.indexByID(id)
		t.entries[idx].LocalID = localID
		return t.entries[idx], true
	}
	li := t.indexByLocal(localID)
	if li < 0 {
		return Entry{}, false
	}
	t.entries[li].ID = id
	t.entries[li].Status = StatusConfirmed
	return t.entries[li], true
}

// fail marks a pending entry as failed
func (t *Thread) fail(localID int64) (Entry, bool) {
	li := t.indexByLocal(localID)
	if li < 0 {
		return Entry{}, false
	}
	t.entries[li].Status = StatusFailed
	return t.entries[li], true
}

// merge folds server history into the log. Known ids get authoritative fields, unknown ids are
// appended, entries the server hasn't returned yet are kept.
func (t *Thread) merge(msgs []domain.Message) {
	for _, m := range msgs {
		if idx := t.indexByID(m.ID); idx >= 0 {
			e := &t.entries[idx]
			e.JobID, e.From, e.To, e.Text = m.JobID, m.SenderEmail, m.ReceiverEmail, m.Text
			e.Timestamp = m.Timestamp
			e.Status = StatusConfirmed
			continue
		}
		t.entries = append(t.entries, Entry{ID: m.ID, JobID: m.JobID, From: m.SenderEmail, To: m.ReceiverEmail,
			Text: m.Text, Timestamp: m.Timestamp, Status: StatusConfirmed})
	}
	t.sort()
}

// sort orders entries seen in server history by (timestamp, id) and keeps the rest after them
// in their local order
func (t *Thread) sort() {
	sort.SliceStable(t.entries, func(i, j int) bool {
		a, b := t.entries[i], t.entries[j]
		aKnown, bKnown := !a.Timestamp.IsZero(), !b.Timestamp.IsZero()
		if aKnown != bKnown {
			return aKnown
		}
		if !aKnown {
			return false
		}
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		return a.ID < b.ID
	})
}

// Entries returns a copy of the log
func (t *Thread) Entries() []Entry {
	res := make([]Entry, len(t.entries))
	copy(res, t.entries)
	return res
}

func (t *Thread) indexByID(id int64) int {
	if id == 0 {
		return -1
	}
	for i, e := range t.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (t *Thread) indexByLocal(localID int64) int {
	if localID == 0 {
		return -1
	}
	for i, e := range t.entries {
		if e.LocalID == localID {
			return i
		}
	}
	return -1
}
