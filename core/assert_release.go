//go:build !debug

package core

func assertf(bool, string, ...any) {}
