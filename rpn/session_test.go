package rpn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	s := NewSession()

	t.Run("empty line", func(t *testing.T) {
		out, err := s.Eval("   ")
		require.NoError(t, err)
		require.True(t, out.Empty)
	})
	t.Run("assign and use", func(t *testing.T) {
		out, err := s.Eval("x = 5")
		require.NoError(t, err)
		require.True(t, out.Assigned)
		require.EqualValues(t, "x", out.Name)
		require.EqualValues(t, 5, out.Value)

		out, err = s.Eval("x 2 *")
		require.NoError(t, err)
		require.False(t, out.Assigned)
		require.EqualValues(t, 10, out.Value)
	})
	t.Run("overwrite", func(t *testing.T) {
		_, err := s.Eval("x = 7")
		require.NoError(t, err)
		out, err := s.Eval("x")
		require.NoError(t, err)
		require.EqualValues(t, 7, out.Value)
	})
	t.Run("malformed assignment keeps value", func(t *testing.T) {
		for _, line := range []string{"x = abc", "x = 1 2", "x = -", "x = -abc"} {
			_, err := s.Eval(line)
			var format *AssignmentFormatError
			require.ErrorAs(t, err, &format, line)
		}
		out, err := s.Eval("x")
		require.NoError(t, err)
		require.EqualValues(t, 7, out.Value)
	})
	t.Run("negative assignment", func(t *testing.T) {
		out, err := s.Eval("y = -2.5")
		require.NoError(t, err)
		require.EqualValues(t, -2.5, out.Value)
	})
	t.Run("two tokens is not an assignment", func(t *testing.T) {
		_, err := s.Eval("x =")
		var unknown *UnknownTokenError
		require.ErrorAs(t, err, &unknown)
		require.EqualValues(t, "=", unknown.Token)
	})
	t.Run("sessions are independent", func(t *testing.T) {
		_, err := NewSession().Eval("x")
		var unknown *UnknownTokenError
		require.ErrorAs(t, err, &unknown)
	})
	t.Run("names", func(t *testing.T) {
		require.EqualValues(t, []string{"x", "y"}, s.Symbols.Names())
		s.Functions.Define("f", func([]float64) (float64, error) { return 1, nil })
		require.EqualValues(t, []string{"f"}, s.Functions.Names())
	})
}
