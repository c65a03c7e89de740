package foundation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption(t *testing.T) {
	t.Run("Some", func(t *testing.T) {
		o := Some("content")
		require.True(t, o.IsSome())
		require.False(t, o.IsNone())
		v, ok := o.Get()
		require.True(t, ok)
		require.Equal(t, "content", v)
		require.Equal(t, "content", o.UnwrapOr("fallback"))
		require.Equal(t, "Some(content)", o.String())
	})

	t.Run("None", func(t *testing.T) {
		o := None[string]()
		require.True(t, o.IsNone())
		_, ok := o.Get()
		require.False(t, ok)
		require.Equal(t, "fallback", o.UnwrapOr("fallback"))
		require.Equal(t, "lazy", o.UnwrapOrElse(func() string { return "lazy" }))
		require.Equal(t, "None", o.String())
	})

	t.Run("Some empty string is still present", func(t *testing.T) {
		o := Some("")
		require.True(t, o.IsSome())
		require.Equal(t, "", o.UnwrapOr("fallback"))
	})

	t.Run("Filter", func(t *testing.T) {
		nonEmpty := func(s string) bool { return s != "" }
		require.True(t, Some("x").Filter(nonEmpty).IsSome())
		require.True(t, Some("").Filter(nonEmpty).IsNone())
		require.True(t, None[string]().Filter(nonEmpty).IsNone())
	})

	t.Run("FromPointer", func(t *testing.T) {
		s := "title"
		require.Equal(t, "title", FromPointer(&s).UnwrapOr(""))
		require.True(t, FromPointer[string](nil).IsNone())
	})
}
