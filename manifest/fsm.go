package manifest

import _ "embed"

// FSMConfig is the game flow graph loaded by the scheduler
//
//go:embed fsm.toml
var FSMConfig string
