package sand

// SettleResult summarises a headless run of a world.
type SettleResult struct {
	Seed    int64
	Ticks   int
	Settled bool
	Moves   int
	Census  map[Kind]int
}

// RunUntilSettled builds the configured scene and steps it until a tick moves
// nothing or maxTicks is reached. Liquids with an open side never settle, so
// maxTicks bounds every run.
func RunUntilSettled(cfg Config, maxTicks int) SettleResult {
	w := NewWithConfig(cfg)
	w.Reset(cfg.Seed)

	res := SettleResult{Seed: cfg.Seed}
	for res.Ticks < maxTicks {
		w.Step()
		res.Ticks++
		res.Moves += w.LastMoves()
		if w.LastMoves() == 0 {
			res.Settled = true
			break
		}
	}
	res.Census = w.Census()
	return res
}
