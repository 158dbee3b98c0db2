package models

import (
	"fmt"
	"strings"
)

// Language is a room language as the server names it.
type Language string

const (
	LanguageEnglish    Language = "English"
	LanguageGerman     Language = "German"
	LanguageBulgarian  Language = "Bulgarian"
	LanguageCzech      Language = "Czech"
	LanguageDanish     Language = "Danish"
	LanguageDutch      Language = "Dutch"
	LanguageFinnish    Language = "Finnish"
	LanguageFrench     Language = "French"
	LanguageEstonian   Language = "Estonian"
	LanguageGreek      Language = "Greek"
	LanguageHebrew     Language = "Hebrew"
	LanguageHungarian  Language = "Hungarian"
	LanguageItalian    Language = "Italian"
	LanguageKorean     Language = "Korean"
	LanguageLatvian    Language = "Latvian"
	LanguageMacedonian Language = "Macedonian"
	LanguageNorwegian  Language = "Norwegian"
	LanguagePortuguese Language = "Portuguese"
	LanguagePolish     Language = "Polish"
	LanguageRomanian   Language = "Romanian"
	LanguageSerbian    Language = "Serbian"
	LanguageSlovakian  Language = "Slovakian"
	LanguageSpanish    Language = "Spanish"
	LanguageSwedish    Language = "Swedish"
	LanguageTagalog    Language = "Tagalog"
	LanguageTurkish    Language = "Turkish"
)

// DefaultLanguage is used when a profile doesn't select one.
const DefaultLanguage = LanguageEnglish

var languages = map[Language]struct{}{
	LanguageEnglish: {}, LanguageGerman: {}, LanguageBulgarian: {},
	LanguageCzech: {}, LanguageDanish: {}, LanguageDutch: {},
	LanguageFinnish: {}, LanguageFrench: {}, LanguageEstonian: {},
	LanguageGreek: {}, LanguageHebrew: {}, LanguageHungarian: {},
	LanguageItalian: {}, LanguageKorean: {}, LanguageLatvian: {},
	LanguageMacedonian: {}, LanguageNorwegian: {}, LanguagePortuguese: {},
	LanguagePolish: {}, LanguageRomanian: {}, LanguageSerbian: {},
	LanguageSlovakian: {}, LanguageSpanish: {}, LanguageSwedish: {},
	LanguageTagalog: {}, LanguageTurkish: {},
}

// ParseLanguage matches a wire value against the known language set.
// The server is not consistent about casing ("german", "German"), so the
// value is capitalize-first normalized before matching.
func ParseLanguage(wire string) (Language, error) {
	l := Language(capitalizeFirst(wire))
	if _, ok := languages[l]; !ok {
		return "", fmt.Errorf("unknown language %q", wire)
	}
	return l, nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
