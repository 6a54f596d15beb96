package main

import (
	"flag"
	"fmt"

	"tankarena/internal/config"
	"tankarena/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome   game.RoundOutcome
	endTick   int
	playerHP  int
	enemyHP   int
	obstacles int

	playerShots int
	enemyShots  int
	playerHits  int // hits taken by the player
	enemyHits   int // hits taken by the enemy
	terrainHits int
	decisions   int
	stalls      int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var obstacles int
	var cfgPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 10, "number of headless rounds")
	flag.IntVar(&ticks, "ticks", 7200, "tick budget per round (60 ticks = 1s)")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&obstacles, "obstacles", -1, "obstacle count (-1 = config value)")
	flag.StringVar(&cfgPath, "config", "", "TOML config path (empty = built-in defaults)")
	flag.BoolVar(&verbose, "v", false, "print each run's event log")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	if obstacles < 0 {
		obstacles = cfg.Obstacles.Count
	}

	fmt.Printf("=== Headless Arena Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d obstacles=%d\n\n",
		runs, ticks, seedBase, seedStep, obstacles)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runRound(cfg, i+1, seed, ticks, obstacles, verbose)
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all, ticks)
}

func runRound(cfg config.Config, runIndex int, seed int64, ticks, obstacles int, verbose bool) runStats {
	sim := game.NewSim(
		game.WithConfig(cfg),
		game.WithSeed(seed),
		game.WithRandomObstacles(obstacles),
		game.WithEventCap(ticks*4),
		game.WithAutoPlayer(),
	)
	endTick := sim.RunUntil(func(s *game.Sim) bool {
		return s.Round.Outcome() != game.OutcomePlaying
	}, ticks, 1.0/60)

	if verbose {
		fmt.Print(sim.Round.Events().Format())
	}

	ev := sim.Round.Events()
	snap := sim.Snapshot()
	return runStats{
		runIndex:    runIndex,
		seed:        seed,
		outcome:     snap.Outcome,
		endTick:     endTick,
		playerHP:    snap.Player.Health,
		enemyHP:     snap.Enemy.Health,
		obstacles:   snap.Obstacles,
		playerShots: len(ev.FilterActor(game.EventShot, "player")),
		enemyShots:  len(ev.FilterActor(game.EventShot, "enemy")),
		playerHits:  len(ev.FilterActor(game.EventHit, "player")),
		enemyHits:   len(ev.FilterActor(game.EventHit, "enemy")),
		terrainHits: ev.Count(game.EventObstacleHit),
		decisions:   ev.Count(game.EventDecision),
		stalls:      ev.Count(game.EventStall),
	}
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s end_tick=%s player_hp=%d enemy_hp=%d obstacles=%d\n",
		rs.outcome, tickString(rs.endTick), rs.playerHP, rs.enemyHP, rs.obstacles)
	fmt.Printf("shots: player=%d enemy=%d  hits_taken: player=%d enemy=%d terrain=%d\n",
		rs.playerShots, rs.enemyShots, rs.playerHits, rs.enemyHits, rs.terrainHits)
	fmt.Printf("controller: decisions=%d stalls=%d\n\n", rs.decisions, rs.stalls)
}

type aggStats struct {
	victories      int
	defeats        int
	undecided      int
	totalShots     int
	totalHits      int
	totalTerrain   int
	totalDecisions int
	totalStalls    int
	endTicks       []int
}

func aggregate(all []runStats) aggStats {
	var a aggStats
	for _, rs := range all {
		switch rs.outcome {
		case game.OutcomeVictory:
			a.victories++
		case game.OutcomeDefeat:
			a.defeats++
		default:
			a.undecided++
		}
		a.totalShots += rs.playerShots + rs.enemyShots
		a.totalHits += rs.playerHits + rs.enemyHits
		a.totalTerrain += rs.terrainHits
		a.totalDecisions += rs.decisions
		a.totalStalls += rs.stalls
		if rs.endTick >= 0 {
			a.endTicks = append(a.endTicks, rs.endTick)
		}
	}
	return a
}

func printAggregate(all []runStats, budget int) {
	a := aggregate(all)

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victories=%d defeats=%d undecided=%d (budget=%d ticks)\n",
		len(all), a.victories, a.defeats, a.undecided, budget)
	fmt.Printf("avg_per_run: shots=%.1f hits=%.1f terrain_hits=%.1f decisions=%.1f stalls=%.1f\n",
		avg(a.totalShots, len(all)), avg(a.totalHits, len(all)), avg(a.totalTerrain, len(all)),
		avg(a.totalDecisions, len(all)), avg(a.totalStalls, len(all)))
	fmt.Printf("avg_round_length=%s ticks (decided rounds only)\n", avgTickString(a.endTicks))
	if a.totalShots > 0 {
		fmt.Printf("accuracy=%.1f%% (tank hits / shots)\n", float64(a.totalHits)/float64(a.totalShots)*100)
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func tickString(tick int) string {
	if tick < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", tick)
}
