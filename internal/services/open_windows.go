//go:build windows

package services

import "os/exec"

func openPath(path string) error {
	return exec.Command("explorer", path).Start()
}
