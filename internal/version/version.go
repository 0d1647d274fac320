// internal/version/version.go
package version

// Version is stamped at release time; local builds report "dev".
var Version = "dev"
