package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/httpdeck/go-viewstate/internal/options"
)

type config struct {
	name  string
	limit int
}

func TestApply_NoCallbacks(t *testing.T) {
	t.Parallel()

	got := options.Apply(config{name: "default", limit: 10}, nil)
	assert.Equal(t, config{name: "default", limit: 10}, got)
}

func TestApply_AppliesInOrder(t *testing.T) {
	t.Parallel()

	cbs := []options.Callback[config]{
		func(cfg *config) { cfg.name = "first" },
		func(cfg *config) { cfg.name = "second" },
		func(cfg *config) { cfg.limit = 42 },
	}

	got := options.Apply(config{name: "default", limit: 10}, cbs)
	assert.Equal(t, config{name: "second", limit: 42}, got)
}
