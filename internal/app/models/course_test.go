package models

import "testing"

func TestNormalizeBatch(t *testing.T) {
	tests := []struct {
		name  string
		batch string
		want  string
	}{
		{name: "empty", batch: "", want: NoBatch},
		{name: "whitespace", batch: "   ", want: NoBatch},
		{name: "value kept", batch: "A1", want: "A1"},
		{name: "value trimmed", batch: " B2 ", want: "B2"},
		{name: "sentinel passes through", batch: NoBatch, want: NoBatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeBatch(tt.batch); got != tt.want {
				t.Errorf("NormalizeBatch(%q) = %q, want %q", tt.batch, got, tt.want)
			}
		})
	}
}

func TestLectureTypeValid(t *testing.T) {
	for _, lt := range []LectureType{LectureTheory, LecturePractical, LectureTutorial} {
		if !lt.Valid() {
			t.Errorf("LectureType(%q).Valid() = false", lt)
		}
	}
	if LectureType("SEMINAR").Valid() {
		t.Error(`LectureType("SEMINAR").Valid() = true`)
	}
}
