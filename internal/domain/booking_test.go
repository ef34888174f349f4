package domain

import (
	"errors"
	"testing"
)

func TestBookingItem_KindAndValidate(t *testing.T) {
	t.Parallel()

	pkg := &TravelPackage{ID: "1", Name: "Goa Beach Paradise"}
	hotel := &Hotel{ID: "1", Name: "Taj Exotica"}
	exp := &Experience{ID: "1", Name: "Sunset Cruise"}

	cases := []struct {
		name     string
		item     BookingItem
		wantKind BookingType
	}{
		{"package", BookingItem{Package: pkg}, BookingTypePackage},
		{"hotel", BookingItem{Hotel: hotel}, BookingTypeHotel},
		{"experience", BookingItem{Experience: exp}, BookingTypeExperience},
		{"empty", BookingItem{}, ""},
		{"two variants", BookingItem{Package: pkg, Hotel: hotel}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.item.Kind(); got != tc.wantKind {
				t.Fatalf("Kind() = %q, want %q", got, tc.wantKind)
			}
		})
	}

	if err := (BookingItem{Package: pkg}).Validate(BookingTypePackage); err != nil {
		t.Fatalf("matching variant should validate, got %v", err)
	}
	if err := (BookingItem{Package: pkg}).Validate(BookingTypeHotel); !errors.Is(err, ErrInvalidBookingItem) {
		t.Fatalf("mismatched type should fail, got %v", err)
	}
	if err := (BookingItem{}).Validate(BookingTypePackage); !errors.Is(err, ErrInvalidBookingItem) {
		t.Fatalf("empty item should fail, got %v", err)
	}
}

func TestBookingItem_Name(t *testing.T) {
	t.Parallel()

	if got := (BookingItem{Hotel: &Hotel{Name: "Taj Exotica"}}).Name(); got != "Taj Exotica" {
		t.Fatalf("Name() = %q", got)
	}
	if got := (BookingItem{}).Name(); got != "" {
		t.Fatalf("Name() of empty item = %q, want empty", got)
	}
}

func TestNormalizeHumanName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"John Doe", "John Doe"},
		{"  John   Doe ", "John Doe"},
		{"\tPriya\n Sharma", "Priya Sharma"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeHumanName(tc.in); got != tc.want {
			t.Fatalf("NormalizeHumanName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
