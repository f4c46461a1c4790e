package config_test

import (
	"testing"

	"github.com/rgladkov/shoporder/internal/adapter/config"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in  string
		exp string
	}{
		{"secret", "secret"},
		{" secret ", "secret"},
		{`"secret"`, "secret"},
		{`'secret'`, "secret"},
		{" \"secret\"\n", "secret"},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(t, test.exp, config.Sanitize(test.in), "input %q", test.in)
	}
}
