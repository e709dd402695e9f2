//go:build darwin

package services

import "os/exec"

func openPath(path string) error {
	return exec.Command("open", path).Start()
}
