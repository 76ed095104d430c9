package tui

import "errors"

var ErrNoServices = errors.New("tui: vault service is not configured")
