package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Città di Milano", "citta-di-milano"},
		{"  Già   previsto -- ancora  ", "gia-previsto-ancora"},
		{"Rilascio fonti energetiche 2024", "rilascio-fonti-energetiche-2024"},
		{"Déjà vu!", "deja-vu"},
		{"100% sicuro?", "100-sicuro"},
		{"", ""},
		{"   ", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.in), "input %q", tt.in)
	}
}
