package services

import "testing"

func TestValidateWindow(t *testing.T) {
	cases := []struct {
		name   string
		window SlotWindow
		valid  bool
	}{
		{"standard hour", SlotWindow{StartTime: "06:00", EndTime: "07:00"}, true},
		{"late evening", SlotWindow{StartTime: "22:00", EndTime: "23:00"}, true},
		{"end before start", SlotWindow{StartTime: "10:00", EndTime: "09:00"}, false},
		{"zero length", SlotWindow{StartTime: "10:00", EndTime: "10:00"}, false},
		{"bad hour", SlotWindow{StartTime: "25:00", EndTime: "26:00"}, false},
		{"bad minute", SlotWindow{StartTime: "10:60", EndTime: "11:00"}, false},
		{"missing leading zero", SlotWindow{StartTime: "6:00", EndTime: "7:00"}, false},
		{"not a clock at all", SlotWindow{StartTime: "morning", EndTime: "noon"}, false},
		{"empty", SlotWindow{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateWindow(tc.window)
			if tc.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.valid && err != ErrInvalidTimeWindow {
				t.Fatalf("expected ErrInvalidTimeWindow, got %v", err)
			}
		})
	}
}
