package version

// Version is reported by --version. Release builds set it with
// go build -ldflags "-X git.home.luguber.info/inful/linkmigrate/internal/version.Version=v0.3.0".
var Version = "dev"

// Build metadata stamped alongside Version.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)
