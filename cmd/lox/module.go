package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/lox/debugs"
	"github.com/reusee/lox/logs"
	"github.com/reusee/lox/loxconfigs"
	"github.com/reusee/lox/runs"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Debugs  debugs.Module
	Configs loxconfigs.Module
	Runs    runs.Module
}
