package types

import "github.com/lepinkainen/mediaopt/utils"

// DefaultVersion is the fallback version when AppContext is nil
const DefaultVersion = "dev"

// AppContext holds application-wide context information passed to commands.
// Capabilities are detected once at startup so commands branch on explicit
// flags instead of re-probing the host.
type AppContext struct {
	Version string
	Caps    utils.Capabilities
}
