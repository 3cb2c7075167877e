package model

import "github.com/Ko-stant/dungeon-layout-core/internal/geometry"

func pt(x, y int) geometry.Point { return geometry.Point{X: x, Y: y} }
