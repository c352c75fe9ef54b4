package version

// Version is set at link time: -ldflags "-X fibbench/internal/version.Version=v1.2.3".
var Version = "dev"
