package version

// version is overridden at build time with -ldflags "-X stockroom/pkg/version.version=...".
var version = "0.1.0"

// Version reports the build version.
func Version() string {
	return version
}
