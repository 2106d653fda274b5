package checkpoint

import "errors"

var (
	ErrVersion    = errors.New("checkpoint: written by an incompatible version")
	ErrMalformed  = errors.New("checkpoint: truncated or badly formed")
	ErrNoDumpName = errors.New("checkpoint: every dump file name in the directory is taken")
)
