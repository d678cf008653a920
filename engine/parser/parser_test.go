package parser

import (
	"testing"

	"github.com/nathoo/wawel/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.Intent
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.Intent{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  types.Intent{},
		},

		// Basic verbs
		{
			name:  "look",
			input: "look",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "back",
			input: "back",
			want:  types.Intent{Verb: "back"},
		},
		{
			name:  "list room",
			input: "list room",
			want:  types.Intent{Verb: "list", Object: "room"},
		},
		{
			name:  "collect leonardo",
			input: "collect leonardo",
			want:  types.Intent{Verb: "collect", Object: "leonardo"},
		},

		// Verb aliases
		{
			name:  "l → look",
			input: "l",
			want:  types.Intent{Verb: "look"},
		},
		{
			name:  "i → list player",
			input: "i",
			want:  types.Intent{Verb: "list", Object: "player"},
		},
		{
			name:  "inv → list player",
			input: "inv",
			want:  types.Intent{Verb: "list", Object: "player"},
		},
		{
			name:  "get key → collect key",
			input: "get key",
			want:  types.Intent{Verb: "collect", Object: "key"},
		},
		{
			name:  "take the chest → collect chest",
			input: "take the chest",
			want:  types.Intent{Verb: "collect", Object: "chest"},
		},
		{
			name:  "pick up raphael → collect raphael",
			input: "pick up raphael",
			want:  types.Intent{Verb: "collect", Object: "raphael"},
		},
		{
			name:  "shoot enemy gun1 → attack",
			input: "shoot enemy gun1",
			want:  types.Intent{Verb: "attack", Object: "enemy", Target: "gun1"},
		},
		{
			name:  "go back → back",
			input: "go back",
			want:  types.Intent{Verb: "back"},
		},

		// Direction shortcuts
		{
			name:  "n → go north",
			input: "n",
			want:  types.Intent{Verb: "go", Object: "north"},
		},
		{
			name:  "u → go up",
			input: "u",
			want:  types.Intent{Verb: "go", Object: "up"},
		},
		{
			name:  "down → go down",
			input: "down",
			want:  types.Intent{Verb: "go", Object: "down"},
		},
		{
			name:  "go e → go east",
			input: "go e",
			want:  types.Intent{Verb: "go", Object: "east"},
		},
		{
			name:  "go west",
			input: "GO West",
			want:  types.Intent{Verb: "go", Object: "west"},
		},

		// Attack forms
		{
			name:  "attack enemy gun1",
			input: "attack enemy gun1",
			want:  types.Intent{Verb: "attack", Object: "enemy", Target: "gun1"},
		},
		{
			name:  "attack enemy with gun1",
			input: "attack enemy with gun1",
			want:  types.Intent{Verb: "attack", Object: "enemy", Target: "gun1"},
		},
		{
			name:  "attack the enemy using the gun1",
			input: "attack the enemy using the gun1",
			want:  types.Intent{Verb: "attack", Object: "enemy", Target: "gun1"},
		},
		{
			name:  "attack enemy",
			input: "attack enemy",
			want:  types.Intent{Verb: "attack", Object: "enemy"},
		},

		// Unknown verbs pass through
		{
			name:  "dance",
			input: "dance wildly",
			want:  types.Intent{Verb: "dance", Object: "wildly"},
		},
		{
			name:  "quit now",
			input: "quit now",
			want:  types.Intent{Verb: "quit", Object: "now"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddressable(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"leonardo", true},
		{"gun1", true},
		{"old_map", true},
		{"", false},
		{"Old Map", false},
		{"old map", false},
		{"Vase", false},
		{"the", false},
		{"with", false},
		{"gun-1", false},
	}
	for _, tt := range tests {
		if got := Addressable(tt.name); got != tt.want {
			t.Errorf("Addressable(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParse_AddressableNamesRoundTrip(t *testing.T) {
	for _, name := range []string{"leonardo", "gun1", "old_map"} {
		got := Parse("collect " + name)
		if got.Object != name {
			t.Errorf("Parse(collect %s).Object = %q", name, got.Object)
		}
	}
}
