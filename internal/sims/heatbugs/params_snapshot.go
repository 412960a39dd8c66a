package heatbugs

import (
	"strconv"

	"heatbugs/internal/core"
)

// Parameters describes the constants the world runs with.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				intParam("workers", "Diffusion workers", w.cfg.Workers),
			},
		},
		{
			Name:    "Thermal",
			Summary: "next = prev*(1-decay-8*diffusion) + diffusion*sum(neighbours)",
			Params: []core.Parameter{
				floatParam("decay", "Decay", params.Decay),
				floatParam("diffusion", "Diffusion", params.Diffusion),
				floatParam("init_temp_min", "Initial temp min", params.InitTempMin),
				floatParam("init_temp_max", "Initial temp max", params.InitTempMax),
			},
		},
		{
			Name: "Bugs",
			Params: []core.Parameter{
				intParam("bug_count", "Bug count", params.BugCount),
				floatParam("bug_heat", "Bug heat", params.BugHeat),
				floatParam("bug_min", "Comfort min", params.BugMin),
				floatParam("bug_max", "Comfort max", params.BugMax),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
