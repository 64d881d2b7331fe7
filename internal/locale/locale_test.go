package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const titleEnvelope = `<?xml version="1.0"?>
<root available-locales="it_IT,en_US" default-locale="it_IT">
	<Title language-id="it_IT">Ciao</Title>
	<Title language-id="en_US">Hi</Title>
</root>`

func TestResolve_XMLEnvelope(t *testing.T) {
	tests := []struct {
		name      string
		preferred string
		want      string
	}{
		{"preferred locale wins", "en_US", "Hi"},
		{"absent locale falls back to declared default", "fr_FR", "Ciao"},
		{"default locale", "it_IT", "Ciao"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(titleEnvelope, tt.preferred))
		})
	}
}

func TestResolve_XMLEnvelopeWithoutDefault(t *testing.T) {
	raw := `<root><Title language-id="de_DE">Hallo</Title></root>`
	assert.Equal(t, "Hallo", Resolve(raw, "fr_FR"), "first entry when nothing matches")
}

func TestResolve_JSONObject(t *testing.T) {
	raw := `{"it_IT":"Ciao","en_US":"Hi"}`
	assert.Equal(t, "Hi", Resolve(raw, "en_US"))

	single := `{"it_IT":"Ciao"}`
	assert.Equal(t, "Ciao", Resolve(single, "fr_FR"), "any non-empty value when preferred is absent")
}

func TestResolve_PlainValuePassesThrough(t *testing.T) {
	assert.Equal(t, "Just a title", Resolve("Just a title", "it_IT"))
}

func TestResolve_MalformedEnvelopeDegradesToRaw(t *testing.T) {
	raw := `<root default-locale="it_IT"><Title language-id="it_IT">unterminated`
	assert.Equal(t, raw, Resolve(raw, "it_IT"))

	badJSON := `{"it_IT": }`
	assert.Equal(t, badJSON, Resolve(badJSON, "it_IT"))
}

func TestResolve_Empty(t *testing.T) {
	assert.Equal(t, "", Resolve("", "it_IT"))
	assert.Equal(t, "", Resolve("   ", "it_IT"))
}
