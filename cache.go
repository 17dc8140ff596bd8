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
	"strings"
	"time"

	"github.com/cybrota/avltree/ops"
	"github.com/patrickmn/go-cache"
)

const (
	// Rendered usage never changes within a run, but the width does on resize
	helpCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	helpCacheCleanup = 5 * time.Minute
)

// NewOptimizedHelpCache creates a cache for rendered operation usage
func NewOptimizedHelpCache() *cache.Cache {
	return cache.New(helpCacheExpiration, helpCacheCleanup)
}

func helpCacheKey(keyType, name string, width int) string {
	return fmt.Sprintf("%s/%s/%d", keyType, strings.ToLower(name), width)
}

func CacheHelpPage(c *cache.Cache, key string, helpTxt string) {
	c.Set(key, helpTxt, helpCacheExpiration)
}

func GetHelpPage(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrfillCache returns the rendered usage of the named operation,
// rendering and caching it on a miss. render may be nil for raw markdown.
func GetOrfillCache(c *cache.Cache, s ops.Session, name string, width int, render func(string) (string, error)) string {
	key := helpCacheKey(s.KeyType(), name, width)
	if page := GetHelpPage(c, key); page != "" {
		return page
	}

	helpTxt, err := s.Help(name)
	if err != nil {
		// not cached: the user is probably still typing the name
		return fmt.Sprintf("No operation matches %q.\n\nKnown operations: %s", name, strings.Join(s.Operations(), ", "))
	}
	if render != nil {
		if rendered, err := render(helpTxt); err == nil {
			helpTxt = rendered
		}
	}
	CacheHelpPage(c, key, helpTxt)
	return helpTxt
}
