package config

const (
	_etc = "/usr/local/etc/com.github.sheets-helper"
	_var = "/usr/local/var/com.github.sheets-helper"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
