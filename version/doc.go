// Package version reports which release of stringr is linked into the
// running binary.
//
// The version is read from the Go build info, so applications do not need to
// set anything. A binary built with
//
//	go build -ldflags "-X github.com/kbukum/stringr/version.Override=v1.2.3"
//
// reports v1.2.3 instead.
package version
