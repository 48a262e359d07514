// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_engine

import (
	"context"
	"encoding/json"
	"fmt"

	internal_checkpoint "github.com/prepwise/api/coach-api/internal/checkpoint"
	"github.com/prepwise/pkg/commons"
)

// End terminates a graph run.
const End = "__end__"

// NodeFunc transforms the interview state. Nodes receive a copy and return the
// new state; they never mutate shared data.
type NodeFunc func(ctx context.Context, st State) (State, error)

// Snapshot is what gets checkpointed after every node transition: the state
// plus the node that runs next. An empty Next means the run has finished.
type Snapshot struct {
	State State  `json:"state"`
	Next  string `json:"next"`
}

// Graph is a checkpointed node graph. A thread (one interview session) runs
// node by node from the entry point; when it reaches a node registered with
// InterruptBefore, the run pauses and the snapshot records that node as
// pending. Resume continues from the pending node, crossing the interrupt
// exactly once.
type Graph struct {
	logger       commons.Logger
	checkpoints  internal_checkpoint.Store
	entry        string
	nodes        map[string]NodeFunc
	edges        map[string]string
	conditionals map[string]func(State) string
	interrupts   map[string]bool
}

func NewGraph(logger commons.Logger, checkpoints internal_checkpoint.Store) *Graph {
	return &Graph{
		logger:       logger,
		checkpoints:  checkpoints,
		nodes:        make(map[string]NodeFunc),
		edges:        make(map[string]string),
		conditionals: make(map[string]func(State) string),
		interrupts:   make(map[string]bool),
	}
}

func (g *Graph) AddNode(name string, fn NodeFunc) {
	g.nodes[name] = fn
}

func (g *Graph) AddEdge(from, to string) {
	g.edges[from] = to
}

// AddConditionalEdge routes from a node to whatever node name decide returns.
func (g *Graph) AddConditionalEdge(from string, decide func(State) string) {
	g.conditionals[from] = decide
}

func (g *Graph) SetEntryPoint(name string) {
	g.entry = name
}

// InterruptBefore pauses the run before each named node executes.
func (g *Graph) InterruptBefore(names ...string) {
	for _, name := range names {
		g.interrupts[name] = true
	}
}

// Invoke starts a thread from the entry point and runs until End or the first
// interrupt.
func (g *Graph) Invoke(ctx context.Context, threadID string, st State) (Snapshot, error) {
	return g.run(ctx, threadID, st, g.entry, false)
}

// Resume continues a paused thread from its pending node. The pending node's
// interrupt is crossed exactly once; a later visit to the same node pauses
// again.
func (g *Graph) Resume(ctx context.Context, threadID string) (Snapshot, error) {
	snap, err := g.StateOf(ctx, threadID)
	if err != nil {
		return Snapshot{}, err
	}
	if snap.Next == "" {
		return Snapshot{}, fmt.Errorf("thread %s has no pending node", threadID)
	}
	return g.run(ctx, threadID, snap.State, snap.Next, true)
}

// StateOf loads the latest snapshot of a thread.
func (g *Graph) StateOf(ctx context.Context, threadID string) (Snapshot, error) {
	data, err := g.checkpoints.Get(ctx, threadID)
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("corrupt checkpoint for thread %s: %w", threadID, err)
	}
	return snap, nil
}

// UpdateState patches the checkpointed state of a paused thread.
func (g *Graph) UpdateState(ctx context.Context, threadID string, apply func(*State)) error {
	snap, err := g.StateOf(ctx, threadID)
	if err != nil {
		return err
	}
	apply(&snap.State)
	return g.save(ctx, threadID, snap)
}

// Exists reports whether a thread has a checkpoint.
func (g *Graph) Exists(ctx context.Context, threadID string) (bool, error) {
	return g.checkpoints.Exists(ctx, threadID)
}

// Delete removes a thread's checkpoint.
func (g *Graph) Delete(ctx context.Context, threadID string) error {
	return g.checkpoints.Delete(ctx, threadID)
}

func (g *Graph) run(ctx context.Context, threadID string, st State, current string, resuming bool) (Snapshot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}

		if current == "" || current == End {
			snap := Snapshot{State: st}
			if err := g.save(ctx, threadID, snap); err != nil {
				return Snapshot{}, err
			}
			g.logger.Debugf("thread finished: thread=%s, round=%d", threadID, st.Round)
			return snap, nil
		}

		if g.interrupts[current] && !resuming {
			snap := Snapshot{State: st, Next: current}
			if err := g.save(ctx, threadID, snap); err != nil {
				return Snapshot{}, err
			}
			g.logger.Debugf("thread paused: thread=%s, node=%s", threadID, current)
			return snap, nil
		}
		resuming = false

		node, ok := g.nodes[current]
		if !ok {
			return Snapshot{}, fmt.Errorf("graph has no node %q", current)
		}

		next, err := node(ctx, st)
		if err != nil {
			return Snapshot{}, fmt.Errorf("node %s failed: %w", current, err)
		}
		st = next

		if decide, ok := g.conditionals[current]; ok {
			current = decide(st)
		} else if to, ok := g.edges[current]; ok {
			current = to
		} else {
			current = End
		}
	}
}

func (g *Graph) save(ctx context.Context, threadID string, snap Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode checkpoint for thread %s: %w", threadID, err)
	}
	if err := g.checkpoints.Save(ctx, threadID, data); err != nil {
		return fmt.Errorf("failed to save checkpoint for thread %s: %w", threadID, err)
	}
	return nil
}
