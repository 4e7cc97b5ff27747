//go:build !windows

package main

import "hotbind"

func pump(_ *hotbind.Manager, done <-chan struct{}) {
	<-done
}
