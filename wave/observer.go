package wave

// Observer receives synchronous notifications from a Grid. Hooks run inside
// the mutating call, after the cell has been updated.
type Observer interface {
	// OnBanned is called after state was removed from cellID's domain.
	OnBanned(cellID, state int)
	// OnObserved is called after cellID was collapsed to state.
	OnObserved(cellID, state int)
}

// ObserverFuncs adapts plain functions to Observer. Nil hooks are skipped.
type ObserverFuncs struct {
	Banned   func(cellID, state int)
	Observed func(cellID, state int)
}

// OnBanned implements Observer.
func (o ObserverFuncs) OnBanned(cellID, state int) {
	if o.Banned != nil {
		o.Banned(cellID, state)
	}
}

// OnObserved implements Observer.
func (o ObserverFuncs) OnObserved(cellID, state int) {
	if o.Observed != nil {
		o.Observed(cellID, state)
	}
}
