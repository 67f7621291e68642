package docscout_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docscout"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()

		err := docscout.Errorf(docscout.ENOTFOUND, "result %q not found", "abc")
		assert.Equal(t, docscout.ENOTFOUND, docscout.ErrorCode(err))
		assert.Equal(t, `result "abc" not found`, docscout.ErrorMessage(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", docscout.ErrorCode(nil))
		assert.Equal(t, "", docscout.ErrorMessage(nil))
	})

	t.Run("non-application error maps to internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		assert.Equal(t, docscout.EINTERNAL, docscout.ErrorCode(err))
	})
}
