package maps

import _ "embed"

//go:embed default.map
var DefaultMap []byte
