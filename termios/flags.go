//go:build linux || darwin

// Copyright 2013 Google, Inc.  All rights reserved.
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

package termios

import (
	"fmt"
	"strings"
)

// flagSep separates flag names in debugging strings.
const flagSep = " | "

// appendFlags appends the name of every mask fully set in word, in table
// order.
func appendFlags(names []string, word tcflag, masks []tcflag, table []string) []string {
	for i, m := range masks {
		if word&m == m {
			names = append(names, table[i])
		}
	}
	return names
}

func joinFlags(word tcflag, masks []tcflag, table []string) string {
	return strings.Join(appendFlags(nil, word, masks, table), flagSep)
}

// enumName is the name of the i'th member of table, or kind(i) when i is
// not a member.
func enumName(kind string, i int, table []string) string {
	if i < 0 || i >= len(table) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}
	return table[i]
}
