package failover

import (
	"errors"
	"sync/atomic"
)

// ErrBusy возвращается, когда операция того же типа уже выполняется
var ErrBusy = errors.New("operation already in progress")

// Gate enforces the while-busy-drop-new policy per operation kind:
// a new request for an in-flight kind is rejected with ErrBusy instead
// of starting a concurrent attempt. Different kinds run independently.
type Gate struct {
	busy atomic.Bool
}

// TryAcquire admits the caller unless an operation is already in flight
func (g *Gate) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release marks the operation as finished
func (g *Gate) Release() {
	g.busy.Store(false)
}
