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
	"strings"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/ops"
)

func TestCacheHelpPageAndGetHelpPage(t *testing.T) {
	c := NewOptimizedHelpCache()
	key := helpCacheKey("int", "insert", 72)
	helpText := "This is help text for insert"

	// Initially, GetHelpPage should return an empty string for a missing key.
	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("GetHelpPage(%q) = %q; want empty string", key, got)
	}

	CacheHelpPage(c, key, helpText)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := helpCacheKey("int", "remove", 72)
	helpText := "This help text should expire soon."

	c.Set(key, helpText, 100*time.Millisecond)

	if got := GetHelpPage(c, key); got != helpText {
		t.Errorf("GetHelpPage(%q) = %q; want %q", key, got, helpText)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetHelpPage(c, key); got != "" {
		t.Errorf("After expiration, GetHelpPage(%q) = %q; want empty string", key, got)
	}
}

func TestHelpCacheKey(t *testing.T) {
	if got, want := helpCacheKey("string", "Insert", 80), "string/insert/80"; got != want {
		t.Errorf("helpCacheKey = %q; want %q", got, want)
	}
	if helpCacheKey("int", "min", 72) == helpCacheKey("int", "min", 100) {
		t.Error("keys for different widths must differ")
	}
}

func TestGetOrfillCache(t *testing.T) {
	c := NewOptimizedHelpCache()
	s, _ := ops.NewSession("int")

	renders := 0
	render := func(md string) (string, error) {
		renders++
		return "rendered:" + md, nil
	}

	first := GetOrfillCache(c, s, "add", 72, render)
	if !strings.HasPrefix(first, "rendered:# insert") {
		t.Fatalf("unexpected help page %q", first)
	}

	second := GetOrfillCache(c, s, "add", 72, render)
	if second != first {
		t.Errorf("second lookup = %q; want cached %q", second, first)
	}
	if renders != 1 {
		t.Errorf("render called %d times; want 1", renders)
	}
}

func TestGetOrfillCacheUnknownOperation(t *testing.T) {
	c := NewOptimizedHelpCache()
	s, _ := ops.NewSession("int")

	got := GetOrfillCache(c, s, "ins", 72, nil)
	if !strings.Contains(got, `No operation matches "ins"`) || !strings.Contains(got, "insert") {
		t.Errorf("unexpected miss message %q", got)
	}
	if c.ItemCount() != 0 {
		t.Errorf("unknown operations must not be cached, cache holds %d items", c.ItemCount())
	}
}

func TestGetOrfillCacheOverview(t *testing.T) {
	c := NewOptimizedHelpCache()
	s, _ := ops.NewSession("string")

	got := GetOrfillCache(c, s, "", 72, nil)
	if !strings.HasPrefix(got, "# Operations (string keys)") {
		t.Errorf("overview = %q", got)
	}
}
