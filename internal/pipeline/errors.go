package pipeline

import "errors"

var errUnevenPair = errors.New("paired inputs have different numbers of reads")
