//go:build !linux && !darwin && !windows

package config

const (
	_etc = "/usr/local/etc/sheets-helper"
	_var = "/usr/local/var/sheets-helper"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
