package models

import "testing"

func TestSubmissionStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from SubmissionStatus
		to   SubmissionStatus
		want bool
	}{
		{name: "pending to submitted", from: SubmissionPendingReview, to: SubmissionSubmitted, want: true},
		{name: "pending to graded", from: SubmissionPendingReview, to: SubmissionGraded, want: true},
		{name: "submitted to graded", from: SubmissionSubmitted, to: SubmissionGraded, want: true},
		{name: "resubmit before grading", from: SubmissionSubmitted, to: SubmissionSubmitted, want: true},
		{name: "regrade", from: SubmissionGraded, to: SubmissionGraded, want: true},
		{name: "graded back to submitted", from: SubmissionGraded, to: SubmissionSubmitted, want: false},
		{name: "graded back to pending", from: SubmissionGraded, to: SubmissionPendingReview, want: false},
		{name: "submitted back to pending", from: SubmissionSubmitted, to: SubmissionPendingReview, want: false},
		{name: "unknown status", from: SubmissionStatus("DRAFT"), to: SubmissionSubmitted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestSubmissionStatusAwaitingGrading(t *testing.T) {
	if !SubmissionPendingReview.AwaitingGrading() {
		t.Error("PENDING_REVIEW should count as awaiting grading")
	}
	if !SubmissionSubmitted.AwaitingGrading() {
		t.Error("SUBMITTED should count as awaiting grading")
	}
	if SubmissionGraded.AwaitingGrading() {
		t.Error("GRADED should not count as awaiting grading")
	}
}
