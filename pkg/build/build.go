package build

// Tag is overridden at link time with -ldflags "-X ttvcli/pkg/build.Tag=...".
var Tag = "dev"
