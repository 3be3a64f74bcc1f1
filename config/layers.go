package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; draw order is the order renderers
// are registered in.
const Default = ecs.LayerDefault
