package liferay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateLanguage(t *testing.T) {
	tests := []struct {
		name   string
		column string
		script string
		want   string
	}{
		{"column freemarker", "ftl", "", "ftl"},
		{"column velocity", "VelocityTemplate", "", "vm"},
		{"guess freemarker directive", "", "<#list items as i>", "ftl"},
		{"guess freemarker interpolation", "", "value: ${title}", "ftl"},
		{"guess velocity", "", "#set($a = 1) #foreach($i in $list)", "vm"},
		{"default", "", "plain text", "ftl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, templateLanguage(tt.column, tt.script))
		})
	}
}

func TestNumericIDs(t *testing.T) {
	assert.Equal(t, []int64{12, 34}, numericIDs([]string{"12", "ABC", "34"}))

	// a placeholder keeps the IN clause syntactically valid
	assert.Equal(t, []int64{-1}, numericIDs([]string{"ABC"}))
}
