// Package parser converts command strings into Intent structs.
// Only the first verb matters; the next two words become the object and
// the target, so "attack enemy gun1" and "attack enemy with gun1" agree.
package parser

import (
	"regexp"
	"strings"

	"github.com/nathoo/wawel/types"
)

var directionExpansions = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
	"u": "up",
	"d": "down",
}

// Full direction names that are standalone shortcuts for "go <dir>".
var directionNames = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
}

var verbAliases = map[string]string{
	// Look
	"l":       "look",
	"examine": "look",
	"x":       "look",

	// Movement
	"walk":  "go",
	"run":   "go",
	"move":  "go",
	"head":  "go",
	"enter": "go",

	"retreat": "back",
	"return":  "back",

	// Collect
	"get":   "collect",
	"take":  "collect",
	"grab":  "collect",
	"carry": "collect",

	"discard": "drop",

	// Attack
	"shoot":  "attack",
	"fire":   "attack",
	"hit":    "attack",
	"kill":   "attack",
	"fight":  "attack",
	"strike": "attack",

	"unlock": "use",

	// Miscellaneous
	"h":    "help",
	"?":    "help",
	"q":    "quit",
	"exit": "quit",
}

// Words that list the player's inventory on their own.
var inventoryWords = map[string]bool{
	"i": true, "inv": true, "inventory": true,
}

var prepositions = map[string]bool{
	"on": true, "at": true, "with": true,
	"using": true, "in": true, "from": true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true,
}

var nameWord = regexp.MustCompile(`^[a-z0-9_]+$`)

// Addressable reports whether name can come back out of Parse as an object
// or target: one lowercase word that is neither an article nor a
// preposition.
func Addressable(name string) bool {
	return nameWord.MatchString(name) && !articles[name] && !prepositions[name]
}

// Parse converts a raw command string into an Intent.
func Parse(input string) types.Intent {
	input = strings.TrimSpace(input)
	if input == "" {
		return types.Intent{}
	}

	words := strings.Fields(strings.ToLower(input))

	// Direction shortcut: bare "n", "south", etc. → go <direction>
	if len(words) == 1 {
		if dir, ok := directionExpansions[words[0]]; ok {
			return types.Intent{Verb: "go", Object: dir}
		}
		if directionNames[words[0]] {
			return types.Intent{Verb: "go", Object: words[0]}
		}
		if inventoryWords[words[0]] {
			return types.Intent{Verb: "list", Object: "player"}
		}
	}

	// Handle multi-word verb phrases before general parsing.
	words = expandMultiWordVerbs(words)

	// Apply verb aliases.
	if alias, ok := verbAliases[words[0]]; ok {
		words[0] = alias
	}

	verb := words[0]
	rest := stripArticles(words[1:])
	object, target := splitArguments(rest)

	if verb == "go" {
		if dir, ok := directionExpansions[object]; ok {
			object = dir
		}
	}

	return types.Intent{
		Verb:   verb,
		Object: object,
		Target: target,
	}
}

// expandMultiWordVerbs handles "pick up", "look at", "go back" etc.
func expandMultiWordVerbs(words []string) []string {
	if len(words) < 2 {
		return words
	}

	switch words[0] {
	case "look":
		if words[1] == "around" {
			return append([]string{"look"}, words[2:]...)
		}
	case "pick":
		if words[1] == "up" {
			return append([]string{"collect"}, words[2:]...)
		}
	case "put":
		if words[1] == "down" {
			return append([]string{"drop"}, words[2:]...)
		}
	case "go":
		if words[1] == "back" {
			return append([]string{"back"}, words[2:]...)
		}
	}

	return words
}

// stripArticles removes articles ("the", "a", "an") from the word list.
func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}

// splitArguments splits the words after the verb into object and target.
// A preposition separates them when present; otherwise the first word is
// the object and the rest is the target.
func splitArguments(words []string) (object, target string) {
	for i, w := range words {
		if prepositions[w] && i > 0 {
			object = strings.Join(words[:i], " ")
			target = strings.Join(words[i+1:], " ")
			return object, target
		}
	}
	if len(words) == 0 {
		return "", ""
	}
	return words[0], strings.Join(words[1:], " ")
}
