package metadata

import "fmt"

type explorerSite struct {
	mainNet     string
	testNet     string
	txPath      string
	addressPath string
}

var explorerSites = map[Explorer]explorerSite{
	Neotracker: {
		mainNet:     "https://neotracker.io",
		testNet:     "https://testnet.neotracker.io",
		txPath:      "tx",
		addressPath: "address",
	},
	Neoscan: {
		mainNet:     "https://neoscan.io",
		testNet:     "https://neoscan-testnet.io",
		txPath:      "transaction",
		addressPath: "address",
	},
}

func (e Explorer) site() explorerSite {
	site, ok := explorerSites[e]
	if !ok {
		return explorerSites[Neotracker]
	}
	return site
}

func (s explorerSite) baseURL(net Network) string {
	if net == MainNet {
		return s.mainNet
	}
	return s.testNet
}

// TransactionURL returns the explorer page for a transaction. Unknown
// explorers fall back to Neotracker.
func (e Explorer) TransactionURL(net Network, txid string) string {
	site := e.site()
	return fmt.Sprintf("%s/%s/%s", site.baseURL(net), site.txPath, txid)
}

func (e Explorer) AddressURL(net Network, address string) string {
	site := e.site()
	return fmt.Sprintf("%s/%s/%s", site.baseURL(net), site.addressPath, address)
}
