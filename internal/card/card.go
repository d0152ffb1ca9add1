package card

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// RankKind classifies a rank for the compositor
type RankKind int

const (
	// Numeric ranks 1-10 carry suit icons
	Numeric RankKind = iota
	// Face ranks J, Q and K carry species artwork
	Face
	// Unrecognized is any other token; it renders a placeholder
	Unrecognized
)

// Rank is the face value of a card: 1-10, J, Q or K.
// Tokens that are neither parse to an Unrecognized rank that keeps the token,
// with anything unsafe in a file name replaced by '_'.
type Rank struct {
	kind  RankKind
	value int    // 1-10 for Numeric
	token string // "J", "Q", "K" for Face, raw input for Unrecognized
}

var (
	Jack  = Rank{kind: Face, token: "J"}
	Queen = Rank{kind: Face, token: "Q"}
	King  = Rank{kind: Face, token: "K"}
)

// NumericRank returns the numeric rank n. It panics if n is outside 1-10.
func NumericRank(n int) Rank {
	if n < 1 || n > 10 {
		panic(fmt.Sprintf("card: numeric rank out of range: %d", n))
	}
	return Rank{kind: Numeric, value: n}
}

// ParseRank converts a CLI or preset token into a Rank.
// "A" is accepted as an alias for 1.
func ParseRank(s string) Rank {
	t := strings.TrimSpace(s)
	switch strings.ToUpper(t) {
	case "J":
		return Jack
	case "Q":
		return Queen
	case "K":
		return King
	case "A":
		return NumericRank(1)
	}
	if n, err := strconv.Atoi(t); err == nil && n >= 1 && n <= 10 {
		return NumericRank(n)
	}
	return Rank{kind: Unrecognized, token: sanitizeToken(t)}
}

// sanitizeToken replaces everything but letters, digits, '-' and '_' so an
// unrecognized token is always a safe file name component
func sanitizeToken(t string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, t)
}

// AllRanks returns the ranks of a full deck in generation order
func AllRanks() []Rank {
	ranks := make([]Rank, 0, 13)
	for i := 1; i <= 10; i++ {
		ranks = append(ranks, NumericRank(i))
	}
	return append(ranks, Jack, Queen, King)
}

// Kind reports whether the rank is numeric, a face or unrecognized
func (r Rank) Kind() RankKind { return r.kind }

// Count is the number of suit icons for a numeric rank, 0 otherwise
func (r Rank) Count() int {
	if r.kind != Numeric {
		return 0
	}
	return r.value
}

// Label is the text stamped in the card corners and used in file names
func (r Rank) Label() string {
	switch r.kind {
	case Numeric:
		if r.value == 1 {
			return "A"
		}
		return strconv.Itoa(r.value)
	default:
		return r.token
	}
}

// String returns the label
func (r Rank) String() string { return r.Label() }

// Suit is one of the four classic suits
type Suit string

const (
	Heart   Suit = "heart"
	Diamond Suit = "diamond"
	Spade   Suit = "spade"
	Club    Suit = "club"
)

var suits = []Suit{Heart, Diamond, Spade, Club}

// Suits returns all known suits
func Suits() []Suit {
	return append([]Suit(nil), suits...)
}

// ParseSuit validates a suit name
func ParseSuit(s string) (Suit, error) {
	for _, suit := range suits {
		if strings.EqualFold(s, string(suit)) {
			return suit, nil
		}
	}
	return "", fmt.Errorf("unknown suit: %s", s)
}

// Species is the cosmetic theme of a deck
type Species string

const (
	Zombie   Species = "zombie"
	Cyber    Species = "cyber"
	Original Species = "original"
	Hoodie   Species = "hoodie"
)

var species = []Species{Zombie, Cyber, Original, Hoodie}

// AllSpecies returns the species in batch generation order
func AllSpecies() []Species {
	return append([]Species(nil), species...)
}

// ParseSpecies validates a species name
func ParseSpecies(s string) (Species, error) {
	for _, sp := range species {
		if strings.EqualFold(s, string(sp)) {
			return sp, nil
		}
	}
	return "", fmt.Errorf("unknown species: %s", s)
}

// SheetPrefix marks contact sheets in the cards directory
const SheetPrefix = "asheet_"

// Card identifies one generated card image
type Card struct {
	Species Species
	Rank    Rank
}

// Filename is the base name the card is persisted under
func (c Card) Filename() string {
	return fmt.Sprintf("%s_%s.png", c.Species, c.Rank.Label())
}

// SheetFilename is the base name of a species contact sheet
func SheetFilename(sp Species) string {
	return fmt.Sprintf("%s%s.png", SheetPrefix, sp)
}

// ParseFilename recovers the card from a base file name such as "cyber_A.png".
// Contact sheets and foreign files return false.
func ParseFilename(name string) (Card, bool) {
	if strings.HasPrefix(name, SheetPrefix) || !strings.HasSuffix(name, ".png") {
		return Card{}, false
	}
	stem := strings.TrimSuffix(name, ".png")
	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return Card{}, false
	}
	sp, err := ParseSpecies(stem[:i])
	if err != nil {
		return Card{}, false
	}
	r := ParseRank(stem[i+1:])
	if r.Kind() == Unrecognized {
		return Card{}, false
	}
	return Card{Species: sp, Rank: r}, true
}
