// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns backend data into descriptions of display regions.
//
// Every function here is pure: it takes data and returns a [Region], an
// [Answer] or a label without touching any UI. Text held by an [Item] is raw
// and untrusted; it only becomes markup through [Region.HTML], which escapes
// it. [Answer] is the single plain-text path and is never turned into markup
// by this package.
package render
