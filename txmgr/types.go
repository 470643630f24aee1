package txmgr

// TransactionLevel defines the database transaction isolation level.
type TransactionLevel int

// Transaction isolation levels from lowest to highest isolation.
const (
	TxLevelDefault    TransactionLevel = 0 // Default is TxReadCommitted
	TxReadUncommitted TransactionLevel = 1 // Lowest isolation level
	TxReadCommitted   TransactionLevel = 2 // Prevents dirty reads
	TxRepeatableRead  TransactionLevel = 3 // Prevents non-repeatable reads
	TxSerializable    TransactionLevel = 4 // Highest isolation level
)

// String returns the SQL name of the level.
func (l TransactionLevel) String() string {
	switch l {
	case TxLevelDefault:
		return "DEFAULT"
	case TxReadUncommitted:
		return "READ UNCOMMITTED"
	case TxReadCommitted:
		return "READ COMMITTED"
	case TxRepeatableRead:
		return "REPEATABLE READ"
	case TxSerializable:
		return "SERIALIZABLE"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether the level belongs to the enumeration.
func (l TransactionLevel) Valid() bool {
	return l >= TxLevelDefault && l <= TxSerializable
}

// ParseTransactionLevel converts a level name ("serializable", "read_committed", ...) into TransactionLevel.
// An empty string means TxLevelDefault.
func ParseTransactionLevel(s string) (TransactionLevel, bool) {
	switch s {
	case "", "default":
		return TxLevelDefault, true
	case "read_uncommitted", "READ UNCOMMITTED":
		return TxReadUncommitted, true
	case "read_committed", "READ COMMITTED":
		return TxReadCommitted, true
	case "repeatable_read", "REPEATABLE READ":
		return TxRepeatableRead, true
	case "serializable", "SERIALIZABLE":
		return TxSerializable, true
	default:
		return TxLevelDefault, false
	}
}
