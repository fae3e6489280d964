package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrStageAlreadyInitialized is thrown if Init is called twice on a stage.
var ErrStageAlreadyInitialized = errors.New("stage is already initialized")

// ErrStageNotRunning is thrown if work is placed into a stage which is not
// initialized, or which has already been finalized.
var ErrStageNotRunning = errors.New("stage is not accepting work")

// ErrStageNotInitialized is thrown for lifecycle calls on an uninitialized stage.
var ErrStageNotInitialized = errors.New("stage is not initialized")

// ErrEmptyPipeline is thrown if a pipeline is started without any stage.
var ErrEmptyPipeline = errors.New("pipeline needs at least one stage")
