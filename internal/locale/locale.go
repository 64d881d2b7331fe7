// Package locale extracts the best-fit localized string from Liferay's
// multi-language field encodings: an XML envelope with language-id entries,
// or a JSON object keyed by locale code.
package locale

import (
	"encoding/json"
	"encoding/xml"
	"strings"
)

type envelope struct {
	DefaultLocale string  `xml:"default-locale,attr"`
	Entries       []entry `xml:",any"`
}

type entry struct {
	LanguageID string `xml:"language-id,attr"`
	Value      string `xml:",chardata"`
}

// Resolve returns the localized value for the preferred locale. Preference
// order: exact locale match, then the envelope's declared default locale,
// then the first entry present. Values that are not a recognised envelope,
// including malformed ones, are returned unchanged; resolution never fails
// a record.
func Resolve(raw, preferred string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	if strings.Contains(raw, "<root") {
		if v, ok := fromXML(raw, preferred); ok {
			return v
		}
	}

	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		if v, ok := fromJSON(raw, preferred); ok {
			return v
		}
	}

	return raw
}

func fromXML(raw, preferred string) (string, bool) {
	var env envelope
	if err := xml.Unmarshal([]byte(raw), &env); err != nil {
		return "", false
	}
	if len(env.Entries) == 0 {
		return "", false
	}

	for _, e := range env.Entries {
		if strings.EqualFold(e.LanguageID, preferred) {
			return strings.TrimSpace(e.Value), true
		}
	}
	for _, e := range env.Entries {
		if strings.EqualFold(e.LanguageID, env.DefaultLocale) {
			return strings.TrimSpace(e.Value), true
		}
	}
	return strings.TrimSpace(env.Entries[0].Value), true
}

func fromJSON(raw, preferred string) (string, bool) {
	var byLocale map[string]string
	if err := json.Unmarshal([]byte(raw), &byLocale); err != nil {
		return "", false
	}

	if v, ok := byLocale[preferred]; ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	for _, v := range byLocale {
		if strings.TrimSpace(v) != "" {
			return v, true
		}
	}
	return "", false
}
