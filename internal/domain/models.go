package domain

import "time"

const (
	RoleBuyer  string = "buyer"
	RoleWorker string = "worker"
	RoleAdmin  string = "admin"
)

const (
	// TaskStatusPending task still has open worker slots or awaits review.
	TaskStatusPending string = "pending"
	// TaskStatusCompleted every slot has been consumed by an approved submission.
	TaskStatusCompleted string = "completed"
)

const (
	SubmissionStatusPending  string = "pending"
	SubmissionStatusApproved string = "approved"
	SubmissionStatusRejected string = "rejected"
)

const (
	WithdrawalStatusPending  string = "pending"
	WithdrawalStatusApproved string = "approved"
)

type User struct {
	ID           int       `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Photo        string    `db:"photo"`
	Role         string    `db:"role"`
	Coins        int       `db:"coins"`
	CreatedAt    time.Time `db:"created_at"`
}

type Task struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	Detail          string    `db:"detail"`
	CreatedBy       string    `db:"created_by"`
	RequiredWorkers int       `db:"required_workers"`
	PayableAmount   int       `db:"payable_amount"`
	CompletionDate  time.Time `db:"completion_date"`
	SubmissionInfo  string    `db:"submission_info"`
	ImageURL        string    `db:"image_url"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

// Escrow is the coin amount debited from the buyer at creation time and still
// notionally held by the task for its remaining slots.
func (t *Task) Escrow() int {
	return t.RequiredWorkers * t.PayableAmount
}

type Submission struct {
	ID            int       `db:"id"`
	TaskID        int       `db:"task_id"`
	TaskTitle     string    `db:"task_title"`
	WorkerEmail   string    `db:"worker_email"`
	WorkerName    string    `db:"worker_name"`
	BuyerEmail    string    `db:"buyer_email"`
	PayableAmount int       `db:"payable_amount"`
	Details       string    `db:"details"`
	Status        string    `db:"status"`
	SubmittedAt   time.Time `db:"submitted_at"`
}

// CanTransition reports whether a submission may move to the target status.
// Approved and rejected are terminal.
func (s *Submission) CanTransition(target string) bool {
	if s.Status != SubmissionStatusPending {
		return false
	}
	return target == SubmissionStatusApproved || target == SubmissionStatusRejected
}

type Payment struct {
	ID            int       `db:"id"`
	Email         string    `db:"email"`
	Amount        float64   `db:"amount"`
	TransactionID string    `db:"transaction_id"`
	Coins         int       `db:"coins"`
	Date          time.Time `db:"date"`
}

type Withdrawal struct {
	ID            int       `db:"id"`
	WorkerEmail   string    `db:"worker_email"`
	WorkerName    string    `db:"worker_name"`
	Coins         int       `db:"withdrawal_coin"`
	Amount        float64   `db:"withdrawal_amount"`
	PaymentSystem string    `db:"payment_system"`
	AccountNumber string    `db:"account_number"`
	Status        string    `db:"status"`
	RequestedAt   time.Time `db:"requested_at"`
}

// CanTransition reports whether a withdrawal may move to the target status.
func (w *Withdrawal) CanTransition(target string) bool {
	return w.Status == WithdrawalStatusPending && target == WithdrawalStatusApproved
}

type Notification struct {
	ID          int       `db:"id"`
	Message     string    `db:"message"`
	ToEmail     string    `db:"to_email"`
	ActionRoute string    `db:"action_route"`
	Time        time.Time `db:"time"`
}
