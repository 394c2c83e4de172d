package model

// ReplyMsg carries the outcome of one submission back to the UI loop.
type ReplyMsg struct {
	SubmissionID string
	Result       Result
}

// ClipboardMsg reports the outcome of copying the last reply.
type ClipboardMsg struct {
	Err error
}

// NoticeExpiredMsg clears a transient status-bar notice.
type NoticeExpiredMsg struct {
	Seq int
}
