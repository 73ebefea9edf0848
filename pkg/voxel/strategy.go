package voxel

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/atomic"
	"gonum.org/v1/gonum/floats"
)

// Strategy selects how concurrent workers share writes into the grid.
type Strategy int

const (
	// StrategyPrivate gives each worker its own grid and sums them at the end.
	// Each private grid holds N^3 float64 values, so the worker count is
	// capped to keep all of them within PrivateGridBudget bytes.
	StrategyPrivate Strategy = iota
	// StrategySharded writes into one grid under striped mutexes.
	StrategySharded
	// StrategyAtomic writes into one grid of atomic floats (CAS add).
	StrategyAtomic
)

// PrivateGridBudget bounds the bytes StrategyPrivate spends on per-worker
// grids. At least one worker always runs.
const PrivateGridBudget = 1 << 30

// privateWorkerLimit returns how many private n^3 grids fit in the budget.
func privateWorkerLimit(n int) int {
	perGrid := n * n * n * 8
	return max(PrivateGridBudget/perGrid, 1)
}

// NumShards is the number of mutexes used by StrategySharded. Power of two.
const NumShards = 1024

var strategyNames = map[Strategy]string{
	StrategyPrivate: "private",
	StrategySharded: "sharded",
	StrategyAtomic:  "atomic",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func (s Strategy) valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy parses a strategy name. The empty string means private.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StrategyPrivate, nil
	}
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q (want private, sharded or atomic)", ErrInvalidArgument, name)
}

// sink receives voxel contributions from workers.
type sink interface {
	add(worker, idx int, v float64)
	// finish is called once after all workers have returned.
	finish() *Grid
}

func newSink(s Strategy, n, workers int) sink {
	switch s {
	case StrategySharded:
		return &shardedSink{grid: NewGrid(n)}
	case StrategyAtomic:
		return &atomicSink{n: n, cells: make([]atomic.Float64, n*n*n)}
	default:
		locals := make([][]float64, workers)
		for w := range locals {
			locals[w] = make([]float64, n*n*n)
		}
		return &privateSink{grid: NewGrid(n), locals: locals}
	}
}

// privateSink: each worker writes only to its own buffer.
type privateSink struct {
	grid   *Grid
	locals [][]float64
}

func (s *privateSink) add(worker, idx int, v float64) {
	s.locals[worker][idx] += v
}

func (s *privateSink) finish() *Grid {
	for _, local := range s.locals {
		floats.Add(s.grid.Data, local)
	}
	s.locals = nil
	return s.grid
}

type shardLocks struct{ mu [NumShards]sync.Mutex }

func (sl *shardLocks) lock(idx int)   { sl.mu[idx&(NumShards-1)].Lock() }
func (sl *shardLocks) unlock(idx int) { sl.mu[idx&(NumShards-1)].Unlock() }

type shardedSink struct {
	grid  *Grid
	locks shardLocks
}

func (s *shardedSink) add(_, idx int, v float64) {
	s.locks.lock(idx)
	s.grid.Data[idx] += v
	s.locks.unlock(idx)
}

func (s *shardedSink) finish() *Grid { return s.grid }

type atomicSink struct {
	n     int
	cells []atomic.Float64
}

func (s *atomicSink) add(_, idx int, v float64) {
	s.cells[idx].Add(v)
}

func (s *atomicSink) finish() *Grid {
	g := NewGrid(s.n)
	for i := range s.cells {
		g.Data[i] = s.cells[i].Load()
	}
	return g
}
