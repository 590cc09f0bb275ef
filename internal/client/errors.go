package client

import "errors"

var errNoUI = errors.New("no ui to run")
