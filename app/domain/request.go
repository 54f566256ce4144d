package domain

// NewJob contains parameters for job creation
type NewJob struct {
	Title    string `json:"title" validate:"required,max=200"`
	Company  string `json:"company" validate:"required,max=200"`
	Location string `json:"location" validate:"required,max=200"`
	Contract string `json:"contract" validate:"required,max=100"`
}

// NewApplication contains parameters for applying to a job
type NewApplication struct {
	JobID          int64  `json:"jobId" validate:"required,min=1"`
	CandidateName  string `json:"candidateName" validate:"required,max=200"`
	CandidateEmail string `json:"candidateEmail" validate:"required,email,max=254"`
}

// NewMessage contains parameters for sending a chat message
type NewMessage struct {
	JobID         int64  `json:"jobId" validate:"required,min=1"`
	SenderEmail   string `json:"senderEmail" validate:"required,email,max=254"`
	ReceiverEmail string `json:"receiverEmail" validate:"required,email,max=254"`
	Text          string `json:"text" validate:"required,max=4000"`
}
