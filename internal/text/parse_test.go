package text

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTokenIDs_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{
			name:  "empty input",
			input: "",
			want:  []int{},
		},
		{
			name:  "single id",
			input: "8",
			want:  []int{8},
		},
		{
			name:  "plain list",
			input: "8,2099,2097,2116",
			want:  []int{8, 2099, 2097, 2116},
		},
		{
			name:  "spaces around items",
			input: " 8 , 2099 ,2097",
			want:  []int{8, 2099, 2097},
		},
		{
			name:  "blank items are skipped",
			input: "1,,2,",
			want:  []int{1, 2},
		},
		{
			name:  "zero is valid",
			input: "0",
			want:  []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTokenIDs(tt.input)
			if err != nil {
				t.Fatalf("ParseTokenIDs(%q): %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseTokenIDs(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTokenIDs_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "letters", input: "abc"},
		{name: "mixed valid and invalid", input: "8,abc,9"},
		{name: "float", input: "1.5"},
		{name: "negative", input: "8,-2"},
		{name: "id with trailing junk", input: "12x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenIDs(tt.input)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ParseTokenIDs(%q) error = %v; want ErrInvalidToken", tt.input, err)
			}
		})
	}
}
