package prefabs

import _ "embed"

//go:embed tuning.yaml
var defaultTuning []byte
