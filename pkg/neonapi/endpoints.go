package neonapi

import (
	"strings"

	"github.com/bloxapp/wallet-metadata/pkg/metadata"
)

// Endpoints maps each network to the base URL of its wallet API.
type Endpoints map[metadata.Network]string

func DefaultEndpoints() Endpoints {
	return Endpoints{
		metadata.MainNet: "https://api.wallet.cityofzion.io",
		metadata.TestNet: "https://testnet-api.wallet.cityofzion.io",
	}
}

// Endpoint returns the base URL for net without a trailing slash. Networks
// other than MainNet resolve to the TestNet endpoint.
func (e Endpoints) Endpoint(net metadata.Network) string {
	if net != metadata.MainNet {
		net = metadata.TestNet
	}
	return strings.TrimSuffix(e[net], "/")
}
