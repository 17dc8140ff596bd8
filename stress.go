// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/avltree/avl"
)

// Bloom filter false positive rate for the set of keys ever inserted
const stressFalsePositiveRate = 0.01

type StressOptions struct {
	Operations   int
	KeySpace     int
	Seed         uint64
	ShowProgress bool
	Progress     io.Writer // defaults to os.Stderr
}

type StressReport struct {
	Steps         int
	Inserts       int
	Removes       int
	UnseenLookups int // lookups of keys the bloom filter has never seen
	MaxHeight     int
	FinalLen      int
	Duration      time.Duration
}

func (r *StressReport) String() string {
	return fmt.Sprintf("%d steps (%d inserts, %d removes, %d unseen-key lookups), max height %d, final size %d, took %s",
		r.Steps, r.Inserts, r.Removes, r.UnseenLookups, r.MaxHeight, r.FinalLen, r.Duration.Round(time.Millisecond))
}

// heightBound is the worst case height of an AVL tree with n nodes
func heightBound(n int) float64 {
	return 1.4405*math.Log2(float64(n+2)) - 0.3277
}

func bloomKey(k int) []byte {
	return []byte(strconv.Itoa(k))
}

// RunStress applies random inserts and removes to a tree, checking it
// against a plain map after every step. It returns the first violation.
func RunStress(opts StressOptions) (*StressReport, error) {
	if opts.Operations <= 0 || opts.KeySpace <= 0 {
		return nil, fmt.Errorf("operations and key space must be positive, got %d and %d", opts.Operations, opts.KeySpace)
	}
	if opts.Progress == nil {
		opts.Progress = os.Stderr
	}

	log.Printf("Starting stress run: %d operations over %d keys (seed %d)", opts.Operations, opts.KeySpace, opts.Seed)
	start := time.Now()

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	tree := avl.New[int]()
	reference := make(map[int]bool, opts.KeySpace)
	seen := bloom.NewWithEstimates(uint(opts.KeySpace), stressFalsePositiveRate)
	report := &StressReport{}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = progressbar.NewOptions(opts.Operations,
			progressbar.OptionSetDescription("🌳 Balancing..."),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	for step := 1; step <= opts.Operations; step++ {
		key := rng.IntN(opts.KeySpace)

		if rng.IntN(3) == 0 {
			report.Removes++
			if got := tree.Remove(key); got != reference[key] {
				return report, fmt.Errorf("step %d: remove(%d) = %t, expected %t", step, key, got, reference[key])
			}
			delete(reference, key)
		} else {
			report.Inserts++
			if got := tree.Insert(key); got == reference[key] {
				return report, fmt.Errorf("step %d: insert(%d) = %t, expected %t", step, key, got, !reference[key])
			}
			reference[key] = true
			seen.Add(bloomKey(key))
		}

		if err := tree.Verify(); err != nil {
			return report, fmt.Errorf("step %d: %w", step, err)
		}
		if !tree.IsBalanced() {
			return report, fmt.Errorf("step %d: tree is not balanced", step)
		}
		if tree.Len() != len(reference) {
			return report, fmt.Errorf("step %d: tree holds %d keys, expected %d", step, tree.Len(), len(reference))
		}
		if h := tree.Height(); float64(h) > heightBound(tree.Len()) {
			return report, fmt.Errorf("step %d: height %d exceeds the AVL bound for %d keys", step, h, tree.Len())
		}
		report.MaxHeight = max(report.MaxHeight, tree.Height())

		// look up a key from twice the key space; half of them are never inserted
		lookup := rng.IntN(2*opts.KeySpace) - opts.KeySpace/2
		found := tree.Contains(lookup)
		if found != reference[lookup] {
			return report, fmt.Errorf("step %d: contains(%d) = %t, expected %t", step, lookup, found, reference[lookup])
		}
		if !seen.Test(bloomKey(lookup)) {
			report.UnseenLookups++
			if found {
				return report, fmt.Errorf("step %d: contains(%d) reports a key that was never inserted", step, lookup)
			}
		}

		report.Steps = step
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
		fmt.Fprintln(opts.Progress)
	}

	inOrder := tree.InOrder()
	for i := 1; i < len(inOrder); i++ {
		if inOrder[i-1] >= inOrder[i] {
			return report, fmt.Errorf("in-order traversal is not strictly increasing at %d: %d then %d", i, inOrder[i-1], inOrder[i])
		}
	}

	report.FinalLen = tree.Len()
	report.Duration = time.Since(start)
	log.Printf("Stress run completed: %s", report)
	return report, nil
}
