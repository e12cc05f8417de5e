package config

import (
	"time"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Spawn Counter Channel Listing

type Configuration struct {
	Spawn     Spawn   `debugmap:"visible"`
	Counter   Counter `debugmap:"visible"`
	Channel   Channel `debugmap:"visible"`
	Listing   Listing `debugmap:"visible"`
	LogFormat string  `debugmap:"visible" default:"console"`
	LogLevel  string  `debugmap:"visible" default:"info"`
}

type Spawn struct {
	MainLines    int           `debugmap:"visible" default:"4"`
	SpawnedLines int           `debugmap:"visible" default:"9"`
	StepDelay    time.Duration `debugmap:"visible" default:"1ms"`
}

type Counter struct {
	Units int    `debugmap:"visible" default:"10"`
	Delta string `debugmap:"visible" default:"one"`
	Mode  string `debugmap:"visible" default:"mutex"`
}

type Channel struct {
	Message         string        `debugmap:"visible" default:"hi"`
	Producers       int           `debugmap:"visible" default:"9"`
	Collect         string        `debugmap:"visible" default:"drain"`
	PollMaxAttempts uint          `debugmap:"visible" default:"1000"`
	PollInterval    time.Duration `debugmap:"visible" default:"1ms"`
	PollMaxElapsed  time.Duration `debugmap:"visible" default:"5s"`
}

type Listing struct {
	Dir    string `debugmap:"visible" default:"."`
	BySize bool   `debugmap:"visible"`
	ByName bool   `debugmap:"visible"`
}
