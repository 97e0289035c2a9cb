package sand

import (
	"strconv"

	"falling-sand/internal/core"
)

// Parameters reports the world settings, tick state and material census. The
// snapshot is rebuilt only after the grid changes, so drivers may call it every
// frame; callers must not modify it.
func (w *World) Parameters() core.ParameterSnapshot {
	if w.paramsValid {
		return w.params
	}
	counts := w.Census()
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				stringParam("scene", "Scene", w.cfg.Scene),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				int64Param("tick", "Tick", int64(w.Ticks())),
				intParam("moves", "Moves last tick", w.lastMoves),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				intParam("sand", "Sand", counts[KindSand]),
				intParam("water", "Water", counts[KindWater]),
				intParam("lava", "Lava", counts[KindLava]),
				intParam("stone", "Stone", counts[KindStone]),
			},
		},
	}
	w.params = core.ParameterSnapshot{Groups: groups}
	w.paramsValid = true
	return w.params
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

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
