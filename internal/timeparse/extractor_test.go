package timeparse

import (
	"reflect"
	"testing"

	"schedbot/internal/domain"
)

func TestExtractSlots(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []domain.TimeSlot
	}{
		{
			name: "shared trailing meridiem",
			text: "Monday 9-11am",
			want: []domain.TimeSlot{{Day: "monday", StartHour: 9, EndHour: 11}},
		},
		{
			name: "pm range",
			text: "Wednesday 6-8pm",
			want: []domain.TimeSlot{{Day: "wednesday", StartHour: 18, EndHour: 20}},
		},
		{
			name: "multiple days order preserved",
			text: "Monday 9-11am and Wednesday 6-8pm",
			want: []domain.TimeSlot{
				{Day: "monday", StartHour: 9, EndHour: 11},
				{Day: "wednesday", StartHour: 18, EndHour: 20},
			},
		},
		{
			name: "explicit meridiem both ends",
			text: "friday 10am to 2pm",
			want: []domain.TimeSlot{{Day: "friday", StartHour: 10, EndHour: 14}},
		},
		{
			name: "bare range reads as 24-hour",
			text: "tuesday 6-9",
			want: []domain.TimeSlot{{Day: "tuesday", StartHour: 6, EndHour: 9}},
		},
		{
			name: "24-hour with minutes",
			text: "thursday 14:00-17:00",
			want: []domain.TimeSlot{{Day: "thursday", StartHour: 14, EndHour: 17}},
		},
		{
			name: "daypart morning",
			text: "saturday morning",
			want: []domain.TimeSlot{{Day: "saturday", StartHour: 6, EndHour: 12}},
		},
		{
			name: "daypart evening",
			text: "free sunday evening",
			want: []domain.TimeSlot{{Day: "sunday", StartHour: 17, EndHour: 21}},
		},
		{
			name: "day abbreviation",
			text: "mon 9-11am",
			want: []domain.TimeSlot{{Day: "monday", StartHour: 9, EndHour: 11}},
		},
		{
			name: "noon pm stays twelve",
			text: "monday 12pm to 3pm",
			want: []domain.TimeSlot{{Day: "monday", StartHour: 12, EndHour: 15}},
		},
		{
			name: "midnight am maps to zero",
			text: "monday 12am to 6am",
			want: []domain.TimeSlot{{Day: "monday", StartHour: 0, EndHour: 6}},
		},
		{
			name: "end not after start discarded",
			text: "monday 11-9am",
			want: nil,
		},
		{
			name: "out of range hour discarded",
			text: "monday 22-26",
			want: nil,
		},
		{
			name: "day without time discarded",
			text: "monday sounds good",
			want: nil,
		},
		{
			name: "time without day yields nothing",
			text: "9-11am works for me",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSlots(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractSlots(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDeletionCriteria(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   domain.DeletionCriteria
		wantOK bool
	}{
		{
			name:   "day and range",
			text:   "Delete the Monday session booked from 6-9am",
			want:   domain.DeletionCriteria{Day: "monday", StartHour: 6, EndHour: 9, HasRange: true},
			wantOK: true,
		},
		{
			name:   "day only",
			text:   "remove my tuesday slots",
			want:   domain.DeletionCriteria{Day: "tuesday"},
			wantOK: true,
		},
		{
			name:   "range only",
			text:   "delete the 6-8pm slot",
			want:   domain.DeletionCriteria{StartHour: 18, EndHour: 20, HasRange: true},
			wantOK: true,
		},
		{
			name:   "no criteria",
			text:   "Remove everything",
			wantOK: false,
		},
		{
			name:   "empty",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDeletionCriteria(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ExtractDeletionCriteria(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ExtractDeletionCriteria(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}
