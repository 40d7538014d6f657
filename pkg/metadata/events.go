package metadata

// Event is an update to State. The set of variants is closed.
type Event interface {
	isEvent()
}

type NetworkChanged struct {
	Network Network
}

type HeightChanged struct {
	BlockHeight uint64
}

type ExplorerChanged struct {
	BlockExplorer Explorer
}

func (NetworkChanged) isEvent()  {}
func (HeightChanged) isEvent()   {}
func (ExplorerChanged) isEvent() {}

// SetNetwork returns a NetworkChanged event. Anything other than MainNet is
// treated as TestNet.
func SetNetwork(net Network) Event {
	network := TestNet
	if net == MainNet {
		network = MainNet
	}
	return NetworkChanged{Network: network}
}

func SetBlockHeight(blockHeight uint64) Event {
	return HeightChanged{BlockHeight: blockHeight}
}

func SetBlockExplorer(blockExplorer Explorer) Event {
	return ExplorerChanged{BlockExplorer: blockExplorer}
}

// Reduce folds an event into state and returns the next state. Unknown
// events leave the state as is.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case HeightChanged:
		state.BlockHeight = e.BlockHeight
	case ExplorerChanged:
		state.BlockExplorer = e.BlockExplorer
	case NetworkChanged:
		state.Network = e.Network
	}
	return state
}
