package jast

import "strings"

// Modifiers is the set of modifier keywords on a declaration.
type Modifiers uint16

// Modifier flags, declared in canonical Java order.
const (
	ModPublic Modifiers = 1 << iota
	ModProtected
	ModPrivate
	ModAbstract
	ModStatic
	ModFinal
	ModTransient
	ModVolatile
	ModSynchronized
	ModNative
	ModStrictfp
	ModDefault
)

var modifierKeywords = []struct {
	flag    Modifiers
	keyword string
}{
	{ModPublic, "public"},
	{ModProtected, "protected"},
	{ModPrivate, "private"},
	{ModAbstract, "abstract"},
	{ModStatic, "static"},
	{ModFinal, "final"},
	{ModTransient, "transient"},
	{ModVolatile, "volatile"},
	{ModSynchronized, "synchronized"},
	{ModNative, "native"},
	{ModStrictfp, "strictfp"},
	{ModDefault, "default"},
}

// ParseModifier returns the flag for a modifier keyword.
func ParseModifier(keyword string) (Modifiers, bool) {
	for _, m := range modifierKeywords {
		if m.keyword == keyword {
			return m.flag, true
		}
	}
	return 0, false
}

// Has reports whether every flag in other is set.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// With returns the set with other added.
func (m Modifiers) With(other Modifiers) Modifiers {
	return m | other
}

// Without returns the set with other removed.
func (m Modifiers) Without(other Modifiers) Modifiers {
	return m &^ other
}

// Keywords returns the keywords of the set in canonical order.
func (m Modifiers) Keywords() []string {
	var keywords []string
	for _, mod := range modifierKeywords {
		if m&mod.flag != 0 {
			keywords = append(keywords, mod.keyword)
		}
	}
	return keywords
}

func (m Modifiers) String() string {
	return strings.Join(m.Keywords(), " ")
}
