package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/agbru/bigcalc/internal/app.Version=v1.2.3".
var Version = "dev"

// PrintVersion writes the program name, version and toolchain to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "bigcalc %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
