package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeJobStatusChanged = "photojob.status_changed"
	EventTypeJobDeleted       = "photojob.deleted"
	EventTypeCommentPosted    = "comment.posted"
)

type JobStatusChangedEvent struct {
	BaseEvent
	JobID      int64  `json:"job_id"`
	UserID     int64  `json:"user_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
}

func NewJobStatusChangedEvent(jobID, userID int64, from, to string) *JobStatusChangedEvent {
	return &JobStatusChangedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeJobStatusChanged,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"job_id":      jobID,
				"user_id":     userID,
				"from_status": from,
				"to_status":   to,
			},
		},
		JobID:      jobID,
		UserID:     userID,
		FromStatus: from,
		ToStatus:   to,
	}
}

type JobDeletedEvent struct {
	BaseEvent
	JobID  int64 `json:"job_id"`
	UserID int64 `json:"user_id"`
}

func NewJobDeletedEvent(jobID, userID int64) *JobDeletedEvent {
	return &JobDeletedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeJobDeleted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"job_id":  jobID,
				"user_id": userID,
			},
		},
		JobID:  jobID,
		UserID: userID,
	}
}

type CommentPostedEvent struct {
	BaseEvent
	CommentID    int64 `json:"comment_id"`
	JobID        int64 `json:"job_id"`
	IsFromClient bool  `json:"is_from_client"`
}

func NewCommentPostedEvent(commentID, jobID int64, fromClient bool) *CommentPostedEvent {
	return &CommentPostedEvent{
		BaseEvent: BaseEvent{
			ID:        uuid.New().String(),
			Type:      EventTypeCommentPosted,
			Timestamp: time.Now(),
			Data: map[string]interface{}{
				"comment_id":     commentID,
				"job_id":         jobID,
				"is_from_client": fromClient,
			},
		},
		CommentID:    commentID,
		JobID:        jobID,
		IsFromClient: fromClient,
	}
}
