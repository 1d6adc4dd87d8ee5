package initialize

import (
	"fmt"
	"os"
	"testing"

	"github.com/denismitr/resizefn/internal/media/manipulator"
	"github.com/stretchr/testify/assert"
)

func Test_intFromEnvOrDefault(t *testing.T) {
	tt := []struct {
		value    string
		set      bool
		expected int
	}{
		{value: "", set: false, expected: 75},
		{value: "", set: true, expected: 75},
		{value: "90", set: true, expected: 90},
	}

	for i, tc := range tt {
		t.Run(fmt.Sprintf("%d value %q expects %d", i, tc.value, tc.expected), func(t *testing.T) {
			os.Unsetenv("RESIZER_TEST_INT")
			if tc.set {
				os.Setenv("RESIZER_TEST_INT", tc.value)
				defer os.Unsetenv("RESIZER_TEST_INT")
			}

			assert.Equal(t, tc.expected, intFromEnvOrDefault("RESIZER_TEST_INT", 75))
		})
	}

	t.Run("not an integer", func(t *testing.T) {
		os.Setenv("RESIZER_TEST_INT", "many")
		defer os.Unsetenv("RESIZER_TEST_INT")

		assert.Panics(t, func() {
			intFromEnvOrDefault("RESIZER_TEST_INT", 75)
		})
	})
}

func TestManipulatorConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.Equal(t, manipulator.DefaultConfig(), ManipulatorConfigFromEnv())
	})

	t.Run("unknown filter", func(t *testing.T) {
		os.Setenv("RESIZER_FILTER", "sharpest")
		defer os.Unsetenv("RESIZER_FILTER")

		assert.Panics(t, func() {
			ManipulatorConfigFromEnv()
		})
	})
}
