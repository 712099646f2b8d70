// Package version carries build metadata set through -ldflags.
package version

// Set at build time:
//
//	go build -ldflags "-X github.com/nigellippett2/nrml/internal/version.Version=v1.2.3"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// String returns a one-line description of the build.
func String() string {
	return Version + " (" + Commit + ", built " + BuildDate + ")"
}
