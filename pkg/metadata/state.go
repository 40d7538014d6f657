package metadata

import "fmt"

type Network string

const (
	MainNet Network = "MainNet"
	TestNet Network = "TestNet"
)

func (n Network) String() string {
	return string(n)
}

// ParseNetwork is the strict counterpart of SetNetwork: it rejects anything
// that isn't a known network instead of coercing it.
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case MainNet, TestNet:
		return Network(s), nil
	}
	return "", fmt.Errorf("unknown network %q", s)
}

type Explorer string

const (
	Neotracker Explorer = "Neotracker"
	Neoscan    Explorer = "Neoscan"
)

func (e Explorer) String() string {
	return string(e)
}

func ParseExplorer(s string) (Explorer, error) {
	switch Explorer(s) {
	case Neotracker, Neoscan:
		return Explorer(s), nil
	}
	return "", fmt.Errorf("unknown block explorer %q", s)
}

// State is the wallet's network metadata. It is replaced as a whole on every
// update and never modified in place.
type State struct {
	Network       Network
	BlockHeight   uint64
	BlockExplorer Explorer
}

func InitialState() State {
	return State{
		Network:       MainNet,
		BlockHeight:   0,
		BlockExplorer: Neotracker,
	}
}

// StateReader gives read access to the current metadata.
type StateReader interface {
	State() State
}

func BlockHeight(r StateReader) uint64 {
	return r.State().BlockHeight
}

func CurrentNetwork(r StateReader) Network {
	return r.State().Network
}

func BlockExplorer(r StateReader) Explorer {
	return r.State().BlockExplorer
}
