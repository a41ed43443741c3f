package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/asyncparty/emitter"
	"github.com/delaneyj/asyncparty/flight"
	"github.com/delaneyj/asyncparty/gate"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkEmit(true)
	benchmarkChurn(true)
	benchmarkFlight(true)
	benchmarkGate(true)
}

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
	sink  int
)

func bump(args ...any) any {
	sink++
	return nil
}

func benchmarkEmit(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Emitter")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			e := emitter.New()
			for i := 0; i < w; i++ {
				e.Subscribe(bump)
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				for j := 0; j < h; j++ {
					e.Emit(j)
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("emit: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}

}

func benchmarkChurn(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Registry Churn")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			e := emitter.New()
			for i := 0; i < w; i++ {
				e.Subscribe(bump)
			}
			toks := make([]emitter.Token, h)

			for i := 0; i < iters; i++ {
				start := time.Now()
				for j := 0; j < h; j++ {
					toks[j] = e.Subscribe(bump)
				}
				for j := 0; j < h; j++ {
					e.Unsubscribe(toks[j])
				}
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("churn: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// func benchmarkFindToken(shouldRender bool) {

// 	tbl := table.NewWriter()
// 	tbl.SetTitle("FindToken Churn")
// 	tbl.SetOutputMirror(os.Stdout)
// 	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

// 	for _, h := range hh {
// 		tach := tachymeter.New(&tachymeter.Config{Size: iters})

// 		e := emitter.New()
// 		for i := 0; i < iters; i++ {
// 			start := time.Now()
// 			for j := 0; j < h; j++ {
// 				e.Subscribe(bump)
// 			}
// 			for j := 0; j < h; j++ {
// 				tok, _ := e.FindToken(bump)
// 				e.Unsubscribe(tok)
// 			}
// 			tach.AddTime(time.Since(start))
// 		}

// 		calc := tach.Calc()
// 		tbl.AppendRows([]table.Row{
// 			{
// 				fmt.Sprintf("find token churn: %d", h),
// 				calc.Time.Avg,
// 				calc.Time.Min,
// 				calc.Time.P75,
// 				calc.Time.P99,
// 				calc.Time.Max,
// 			},
// 		})
// 	}

// 	if shouldRender {
// 		tbl.Render()
// 	}
// }

func benchmarkFlight(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Single Flight")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	ctx := context.Background()

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		init := flight.NewInitializer(func() (int, error) {
			return 1, nil
		})
		if _, err := init.Call(ctx); err != nil {
			log.Fatal(err)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			for j := 0; j < h; j++ {
				v, _ := init.Call(ctx)
				sink += v
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("initializer cached: %d", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		st := flight.NewStampede(func() (int, error) {
			return 1, nil
		})

		for i := 0; i < iters; i++ {
			start := time.Now()
			for j := 0; j < h; j++ {
				v, _ := st.Call(ctx)
				sink += v
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("stampede settle: %d", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkGate(shouldRender bool) {

	tbl := table.NewWriter()
	tbl.SetTitle("Async Gate")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	ctx := context.Background()

	for _, h := range hh {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		g := gate.New(false)
		for i := 0; i < iters; i++ {
			start := time.Now()
			for j := 0; j < h; j++ {
				if err := g.Enter(ctx); err != nil {
					log.Fatal(err)
				}
			}
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("enter unlocked: %d", h),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	{
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		g := gate.New(true)
		for i := 0; i < iters; i++ {
			done := make(chan struct{})
			go func() {
				if err := g.Enter(ctx); err != nil {
					log.Fatal(err)
				}
				close(done)
			}()
			for g.Waiters() == 0 {
				time.Sleep(time.Microsecond)
			}

			start := time.Now()
			g.SetLocked(false)
			<-done
			tach.AddTime(time.Since(start))

			g.SetLocked(true)
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				"unlock roundtrip: 1",
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
