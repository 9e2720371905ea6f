package result_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enroll/pkg/result"
)

func TestAccessors(t *testing.T) {
	t.Run("ok exposes value and no error", func(t *testing.T) {
		r := result.Ok[int, string](42)

		assert.True(t, r.IsOk())
		assert.False(t, r.IsErr())

		v, ok := r.Value()
		require.True(t, ok)
		assert.Equal(t, 42, v)

		_, hasErr := r.Error()
		assert.False(t, hasErr)
	})

	t.Run("err exposes error and no value", func(t *testing.T) {
		r := result.Err[int]("boom")

		assert.True(t, r.IsErr())

		_, ok := r.Value()
		assert.False(t, ok)

		e, hasErr := r.Error()
		require.True(t, hasErr)
		assert.Equal(t, "boom", e)
	})

	t.Run("must value panics on err", func(t *testing.T) {
		r := result.Err[int](errors.New("boom"))
		assert.Panics(t, func() { r.MustValue() })
	})
}

func TestAndThen(t *testing.T) {
	double := func(n int) result.Result[int, string] {
		return result.Ok[int, string](n * 2)
	}

	t.Run("chains through successes", func(t *testing.T) {
		r := result.AndThen(result.Ok[int, string](21), double)

		v, ok := r.Value()
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("first err short-circuits and later steps never run", func(t *testing.T) {
		called := false
		step2 := func(n int) result.Result[int, string] {
			called = true
			return result.Ok[int, string](n)
		}

		r := result.AndThen(result.Err[int]("first"), step2)

		assert.False(t, called)
		e, hasErr := r.Error()
		require.True(t, hasErr)
		assert.Equal(t, "first", e)
	})
}

func TestMapping(t *testing.T) {
	t.Run("map transforms ok and skips err", func(t *testing.T) {
		r := result.Map(result.Ok[int, string](2), func(n int) int { return n + 1 })
		v, _ := r.Value()
		assert.Equal(t, 3, v)

		r = result.Map(result.Err[int]("boom"), func(n int) int { return n + 1 })
		assert.True(t, r.IsErr())
	})

	t.Run("map err transforms err and skips ok", func(t *testing.T) {
		r := result.MapErr(result.Err[int]("boom"), func(s string) string { return "wrapped: " + s })
		e, _ := r.Error()
		assert.Equal(t, "wrapped: boom", e)

		passed := result.MapErr(result.Ok[int, string](7), func(s string) string {
			t.Fatal("map err must not run for ok")
			return s
		})
		v, ok := passed.Value()
		require.True(t, ok)
		assert.Equal(t, 7, v)
	})
}
