package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		debug bool
	}{
		{"Debug console", Config{Level: "debug", Format: "console"}, true},
		{"Info json", Config{Level: "info", Format: "json"}, false},
		{"Warn json", Config{Level: "warn", Format: "json"}, false},
		{"Unknown level falls back to info", Config{Level: "loud"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Equal(t, tt.debug, l.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestWithRayID(t *testing.T) {
	base, err := New(&Config{Level: "info", Format: "json"})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		assert.Same(t, base, WithRayID(base, c))
		c.Locals("ray_id", "abc")
		assert.NotSame(t, base, WithRayID(base, c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
