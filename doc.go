/*
 * AS_PATH subsystem. Copyright (C) 2026-present the aspath authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License along
 * with this program; if not, write to the Free Software Foundation, Inc.,
 * 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 */

// Package aspath parses, normalizes, interns, composes, compares, encodes
// and renders the AS_PATH attribute carried in BGP UPDATE messages (RFC
// 4271 section 4.3, RFC 6793 four-octet AS support).
//
// A Subsystem owns the intern table and the process-wide asn display mode.
// Wire bytes come in through Parse, are normalized, and looked up in the
// intern table to produce a shared *Path. Composition operations (Prepend,
// AddSequence, Aggregate, TruncateJoin, StripLeadingConfed, StripAllConfed)
// build an uninterned draft, normalize it, and intern the result. Interned
// Paths are immutable and safely shared by reference; a fresh mutation
// always produces a new, as yet uninterned, object.
package aspath
