// Package db2itx maps a generic transaction API onto a native database driver.
//
// The adapter package holds the begin/commit/rollback delegation, native contains the driver contract
// and its implementations, txmgr is the driver-agnostic transaction manager.
// This package keeps the pieces shared by all of them: logging, error kinds and BeginFunc.
package db2itx
