package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/asyncparty/abort"
	"github.com/delaneyj/asyncparty/emitter"
	"github.com/delaneyj/asyncparty/flight"
	"github.com/delaneyj/asyncparty/gate"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting asyncparty stress run, please wait...")
	defer log.Print("Finished asyncparty stress run")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scenario", "ops", "events", "digest", "time", "eventRate",
	})

	scenarios := []struct {
		name string
		run  func() (ops, events int64, digest uint64)
	}{
		{"registry churn", runChurn},
		{"reentrant removal", runReentrant},
		{"single flight", runFlight},
		{"gate storm", runGateStorm},
	}

	for _, sc := range scenarios {
		log.Printf("Running '%s' scenario", sc.name)
		start := time.Now()
		ops, events, digest := sc.run()
		duration := time.Since(start)

		eventRate := float64(events) / (float64(duration) / float64(time.Millisecond))
		table.Append([]string{
			sc.name,
			humanize.Comma(ops),
			humanize.Comma(events),
			fmt.Sprintf("%016x", digest),
			fmt.Sprint(duration),
			humanize.Comma(int64(eventRate)),
		})
	}
	table.Render() // Send output
}

func waitUntil(cond func() bool, timeout time.Duration, msg string) {
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			log.Fatal(msg)
		}
		time.Sleep(time.Millisecond)
	}
}

type churnConfig struct {
	ops        int64   // total operations to run
	subBias    float64 // fraction of ops that subscribe
	unsubBias  float64 // fraction of ops that unsubscribe, the rest emit
	staleEvery int64   // every nth unsubscribe retries a dead token instead
	seed       int64   // fixed so the digest is comparable across runs
}

// runChurn hammers subscribe/unsubscribe/emit while mirroring the registry
// in a set, and checks the emitter against the mirror after every operation.
func runChurn() (int64, int64, uint64) {
	cfg := &churnConfig{
		ops:        200_000,
		subBias:    0.45,
		unsubBias:  0.35,
		staleEvery: 50,
		seed:       0,
	}

	random := rand.New(rand.NewSource(cfg.seed))
	digest := xxhash.New()

	e := emitter.New()
	model := mapset.NewSet[emitter.Token]()
	var (
		live      []emitter.Token
		graveyard []emitter.Token
		delivered int64
		nextID    int64
	)

	subscribe := func() {
		id := nextID
		nextID++
		tok := e.Subscribe(func(...any) any {
			delivered++
			digest.WriteString(strconv.FormatInt(id, 10))
			return nil
		})
		model.Add(tok)
		live = append(live, tok)
	}

	for op := int64(0); op < cfg.ops; op++ {
		roll := random.Float64()
		switch {
		case roll < cfg.subBias:
			subscribe()
		case roll < cfg.subBias+cfg.unsubBias && len(live) > 0:
			if cfg.staleEvery > 0 && op%cfg.staleEvery == 0 && len(graveyard) > 0 {
				dead := graveyard[random.Intn(len(graveyard))]
				if e.Unsubscribe(dead) {
					log.Fatalf("dead token %v unsubscribed twice", dead)
				}
				break
			}
			i := random.Intn(len(live))
			tok := live[i]
			if !e.Unsubscribe(tok) {
				log.Fatalf("live token %v refused to unsubscribe", tok)
			}
			if e.FindHandler(tok) != nil {
				log.Fatalf("token %v still resolves after unsubscribe", tok)
			}
			model.Remove(tok)
			graveyard = append(graveyard, tok)
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			before := delivered
			e.Emit(op)
			want := int64(model.Cardinality())
			if delivered-before != want {
				log.Fatalf("emit reached %d of %d handlers", delivered-before, want)
			}
		}

		if model.Cardinality() != e.Size() {
			log.Fatalf("mirror holds %d tokens, emitter reports %d", model.Cardinality(), e.Size())
		}
	}

	return cfg.ops, delivered, digest.Sum64()
}

type reentrantConfig struct {
	rounds   int64 // fresh handler rows, one emit each
	maxWidth int64 // widest row to build
	seed     int64 // fixed so round shapes repeat
}

// runReentrant builds random handler rows where one handler removes another
// mid-emit, then checks every invocation count against the restart rule:
// removing ahead of the cursor replays the already run prefix once, removing
// behind or removing yourself replays nothing.
func runReentrant() (int64, int64, uint64) {
	cfg := &reentrantConfig{
		rounds:   20_000,
		maxWidth: 12,
		seed:     0,
	}

	random := rand.New(rand.NewSource(cfg.seed))
	digest := xxhash.New()

	var events int64
	for round := int64(0); round < cfg.rounds; round++ {
		w := 2 + random.Intn(int(cfg.maxWidth)-1)
		remover := random.Intn(w)
		victim := random.Intn(w)

		e := emitter.New()
		toks := make([]emitter.Token, w)
		counts := make([]int64, w)
		for i := 0; i < w; i++ {
			i := i
			toks[i] = e.Subscribe(func(...any) any {
				counts[i]++
				events++
				digest.WriteString(strconv.Itoa(i))
				if i == remover {
					e.Unsubscribe(toks[victim])
				}
				return nil
			})
		}

		e.Emit()

		for i := 0; i < w; i++ {
			want := int64(1)
			if victim > remover {
				switch {
				case i <= remover:
					want = 2
				case i == victim:
					want = 0
				}
			}
			if counts[i] != want {
				log.Fatalf("round %d width %d remover %d victim %d: handler %d ran %d times, want %d",
					round, w, remover, victim, i, counts[i], want)
			}
		}
		if e.Size() != w-1 {
			log.Fatalf("round %d: size %d after removal, want %d", round, e.Size(), w-1)
		}
	}

	return cfg.rounds, events, digest.Sum64()
}

type flightConfig struct {
	rounds  int64 // fresh initializer bursts, plus as many stampede settles
	callers int64 // concurrent callers joining each burst
}

// runFlight bursts concurrent callers at fresh initializers, requiring one
// factory run per burst and the same value for every caller, then settles a
// stampede sequentially, requiring a fresh factory run per call.
func runFlight() (int64, int64, uint64) {
	cfg := &flightConfig{
		rounds:  2_000,
		callers: 16,
	}

	ctx := context.Background()
	digest := xxhash.New()
	var events int64

	for round := int64(0); round < cfg.rounds; round++ {
		release := make(chan struct{})
		var calls atomic.Int64
		want := int(round)
		init := flight.NewInitializer(func() (int, error) {
			calls.Add(1)
			<-release
			return want, nil
		})

		var wg sync.WaitGroup
		got := make(chan int, cfg.callers)
		for c := int64(0); c < cfg.callers; c++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := init.Call(ctx)
				if err != nil {
					log.Fatalf("round %d: call failed: %v", round, err)
				}
				got <- v
			}()
		}

		waitUntil(init.Running, time.Second, "initializer never started")
		close(release)
		wg.Wait()
		close(got)

		for v := range got {
			if v != want {
				log.Fatalf("round %d: caller saw %d, want %d", round, v, want)
			}
			events++
		}
		if n := calls.Load(); n != 1 {
			log.Fatalf("round %d: factory ran %d times for one burst", round, n)
		}
		if v, err := init.Call(ctx); err != nil || v != want {
			log.Fatalf("round %d: cached call got (%d, %v)", round, v, err)
		}
		if n := calls.Load(); n != 1 {
			log.Fatalf("round %d: cache miss reran the factory, %d runs", round, n)
		}
		digest.WriteString(strconv.FormatInt(round, 10))
	}

	var seq atomic.Int64
	st := flight.NewStampede(func() (int, error) {
		return int(seq.Add(1)), nil
	})
	for i := int64(0); i < cfg.rounds; i++ {
		v, err := st.Call(ctx)
		if err != nil {
			log.Fatalf("stampede call %d failed: %v", i, err)
		}
		if int64(v) != i+1 {
			log.Fatalf("stampede call %d reused an old flight: got %d", i, v)
		}
		events++
	}

	return cfg.rounds * (cfg.callers + 1), events, digest.Sum64()
}

type gateStormConfig struct {
	rounds      int64 // lock, park, unlock cycles
	waiters     int64 // goroutines parked per cycle
	cancelEvery int64 // every nth parked waiter gives up instead
}

// runGateStorm parks a crowd behind a locked gate, cancels some of them,
// unlocks, and requires exactly the survivors through and an empty queue
// after.
func runGateStorm() (int64, int64, uint64) {
	cfg := &gateStormConfig{
		rounds:      500,
		waiters:     32,
		cancelEvery: 4,
	}

	digest := xxhash.New()
	var events int64

	for round := int64(0); round < cfg.rounds; round++ {
		g := gate.New(true)

		var admitted, aborted atomic.Int64
		var wg sync.WaitGroup
		var cancels []context.CancelFunc
		for wtr := int64(0); wtr < cfg.waiters; wtr++ {
			ctx := context.Background()
			if cfg.cancelEvery > 0 && wtr%cfg.cancelEvery == 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancels = append(cancels, cancel)
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := g.Enter(ctx); err != nil {
					if !abort.Is(err) {
						log.Fatalf("round %d: enter failed oddly: %v", round, err)
					}
					aborted.Add(1)
					return
				}
				admitted.Add(1)
			}()
		}

		waitUntil(func() bool { return int64(g.Waiters()) == cfg.waiters },
			time.Second, "waiters never all parked")

		for _, cancel := range cancels {
			cancel()
		}
		doomed := int64(len(cancels))
		waitUntil(func() bool { return int64(g.Waiters()) == cfg.waiters-doomed },
			time.Second, "cancelled waiters never left the queue")

		g.SetLocked(false)
		wg.Wait()

		if admitted.Load() != cfg.waiters-doomed {
			log.Fatalf("round %d: admitted %d, want %d", round, admitted.Load(), cfg.waiters-doomed)
		}
		if aborted.Load() != doomed {
			log.Fatalf("round %d: aborted %d, want %d", round, aborted.Load(), doomed)
		}
		if g.Waiters() != 0 {
			log.Fatalf("round %d: %d waiters left behind", round, g.Waiters())
		}
		events += cfg.waiters
		digest.WriteString(strconv.FormatInt(admitted.Load(), 10))
	}

	return cfg.rounds * cfg.waiters, events, digest.Sum64()
}
