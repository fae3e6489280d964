package handoff

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidCapacity is returned by New for a capacity of zero or less.
var ErrInvalidCapacity = errors.New("queue capacity must be positive")

// ErrQueueDestroyed is returned by Put once the queue has been torn down.
var ErrQueueDestroyed = errors.New("queue has been destroyed")
