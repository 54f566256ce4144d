// Package domain contains job board entities shared by the store, the HTTP api and the client
package domain

import "time"

// Job is a posted position
type Job struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Company  string `json:"company" db:"company"`
	Location string `json:"location" db:"location"`
	Contract string `json:"contract" db:"contract"`
}

// Application is a candidate's submission of interest against a job.
// The same candidate may apply to the same job more than once, rows are never deduplicated.
type Application struct {
	ID             int64  `json:"id" db:"id"`
	JobID          int64  `json:"jobId" db:"job_id"`
	CandidateName  string `json:"candidateName" db:"candidate_name"`
	CandidateEmail string `json:"candidateEmail" db:"candidate_email"`
}

// Message is a single chat entry between two participants scoped to a job.
// Timestamp is assigned by the store on insert and never changes.
type Message struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"jobId"`
	SenderEmail   string    `json:"senderEmail"`
	ReceiverEmail string    `json:"receiverEmail"`
	Text          string    `json:"text"`
	Timestamp     time.Time `json:"timestamp"`
}

// Involves checks if email is the sender or the receiver of the message
func (m Message) Involves(email string) bool {
	return m.SenderEmail == email || m.ReceiverEmail == email
}

// SeedResult is the outcome of a seed request: whether rows were inserted and the resulting jobs
type SeedResult struct {
	Seeded bool  `json:"seeded"`
	Jobs   []Job `json:"jobs"`
}

// DefaultJobs returns jobs used to seed an empty board
func DefaultJobs() []NewJob {
	return []NewJob{
		{Title: "Frontend Developer", Company: "TechCorp", Location: "Milano", Contract: "Full-time"},
		{Title: "Backend Engineer", Company: "DataWorks", Location: "Roma", Contract: "Full-time"},
	}
}
