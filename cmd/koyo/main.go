// Koyo - A temperature-aware tonal ladder generator
//
// Koyo turns a single base colour into a perceptually uniform tonal
// ladder whose hue drifts with the colour temperature of the light.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/koyo/internal/cli"

func main() {
	cli.Execute()
}
