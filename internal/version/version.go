package version

// Version is the current conventionalish release, overridable at build time
// with -ldflags "-X github.com/Tomas-vilte/conventionalish/internal/version.Version=x.y.z".
var Version = "0.1.0"

// FullVersion returns Version with the v prefix.
func FullVersion() string {
	return "v" + Version
}
