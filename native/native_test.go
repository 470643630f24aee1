package native

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetIsolationSQL(t *testing.T) {
	t.Parallel()

	for code, want := range map[IsolationCode]string{
		IsolationReadUncommitted: "SET TRANSACTION ISOLATION LEVEL READ UNCOMMITTED",
		IsolationReadCommitted:   "SET TRANSACTION ISOLATION LEVEL READ COMMITTED",
		IsolationSerializable:    "SET TRANSACTION ISOLATION LEVEL SERIALIZABLE",
		IsolationRepeatableRead:  "SET TRANSACTION ISOLATION LEVEL REPEATABLE READ",
	} {
		got, err := SetIsolationSQL(code)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Contains(t, want, code.String())
	}

	_, err := SetIsolationSQL(IsolationCode(3))
	require.ErrorIs(t, err, ErrUnknownIsolationCode)
	require.Equal(t, "UNKNOWN", IsolationCode(3).String())
}
