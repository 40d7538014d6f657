package version

// Version is the running wallet release. It is overridden at build time
// with -ldflags "-X github.com/bloxapp/wallet-metadata/pkg/version.Version=...".
var Version = "0.2.0"
