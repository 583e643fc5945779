package photojob

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusTBC              Status = "TBC"
	StatusConfirmed        Status = "CONFIRMED"
	StatusDownloaded       Status = "DOWNLOADED"
	StatusInProgress       Status = "IN_PROGRESS"
	StatusReadyForDownload Status = "READY_FOR_DOWNLOAD"
	StatusReadyForReview   Status = "READY_FOR_REVIEW"
	StatusPendingPayment   Status = "PENDING_PAYMENT"
	StatusCompleted        Status = "COMPLETED"
)

// Statuses is the lifecycle in order. Jobs may move between any two of them.
var Statuses = []Status{
	StatusTBC,
	StatusConfirmed,
	StatusDownloaded,
	StatusInProgress,
	StatusReadyForDownload,
	StatusReadyForReview,
	StatusPendingPayment,
	StatusCompleted,
}

var statusLabels = map[Status]string{
	StatusTBC:              "To be confirmed",
	StatusConfirmed:        "Confirmed",
	StatusDownloaded:       "Downloaded",
	StatusInProgress:       "In progress",
	StatusReadyForDownload: "Ready for download",
	StatusReadyForReview:   "Ready for review",
	StatusPendingPayment:   "Pending payment",
	StatusCompleted:        "Completed",
}

func (s Status) Valid() bool {
	return s.index() >= 0
}

func (s Status) index() int {
	for i, candidate := range Statuses {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus accepts only the enum codes, compared case-sensitively after trimming.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q", raw)
	}
	return s, nil
}

// Progress maps a status onto 0..100 with TBC counted as the first step, so TBC is
// 12.5 and COMPLETED is 100. Unknown codes are 0.
func Progress(s Status) float64 {
	i := s.index()
	if i < 0 {
		return 0
	}
	return float64(i+1) / float64(len(Statuses)) * 100
}

// Label is the display name of a status, or the raw code when it is unknown.
func Label(s Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

type ClientActions struct {
	CanComment bool `json:"can_comment"`
	CanApprove bool `json:"can_approve"`
}

// AllowedClientActions is advisory. Nothing in the store enforces it.
func AllowedClientActions(s Status) ClientActions {
	review := s == StatusReadyForReview
	return ClientActions{CanComment: review, CanApprove: review}
}
