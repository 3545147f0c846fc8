//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// Each hash index addresses a bucket of BucketSize entries; replacement
// within a bucket picks the slot with the lowest age-weighted priority.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
package transpositiontable

import (
	"math"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/frankkopp/FrankyGo/internal/logging"
	. "github.com/frankkopp/FrankyGo/internal/types"
	"github.com/frankkopp/FrankyGo/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MinSizeInMB minimal memory usage of tt, matching the UCI Hash
	// option's minimum of 2 MB.
	MinSizeInMB = 2

	// MaxSizeInMB maximal memory usage of tt, matching the UCI Hash
	// option's maximum of 1024 MB.
	MaxSizeInMB = 1024

	// hashfullSampleBuckets is the number of buckets sampled by Hashfull,
	// matching the UCI "hashfull" permille estimate convention of sampling
	// rather than scanning the whole table.
	hashfullSampleBuckets = 1000
)

// TtTable is the actual transposition table
// object holding data and state.
// Create with NewTtTable()
type TtTable struct {
	log                *logging.Logger
	data               []ttBucket
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfBuckets uint64
	numberOfEntries    uint64
	age                uint8
	Stats              TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of bytes
// as a maximum of memory usage. actual size will be determined
// by the number of buckets fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log:                myLogging.GetLog(),
		data:               nil,
		sizeInByte:         0,
		hashKeyMask:        0,
		maxNumberOfBuckets: 0,
		numberOfEntries:    0,
		age:                0,
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < MinSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB increased to min of %d MB", sizeInMByte, MinSizeInMB))
		sizeInMByte = MinSizeInMB
	}

	bucketSize := uint64(unsafe.Sizeof(ttBucket{}))

	// calculate the maximum power of 2 of buckets fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte >= bucketSize {
		tt.maxNumberOfBuckets = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/bucketSize))))
	} else {
		tt.maxNumberOfBuckets = 0
	}
	tt.hashKeyMask = tt.maxNumberOfBuckets - 1 // --> 0x0001111....111

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfBuckets * bucketSize

	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]ttBucket, tt.maxNumberOfBuckets)
	tt.numberOfEntries = 0
	tt.age = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d buckets x %d entries (bucket=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfBuckets, BucketSize, bucketSize, sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// NewSearch bumps the table's search generation. Called once per search
// so that entries from earlier searches lose replacement priority over
// time without having to touch every entry.
func (tt *TtTable) NewSearch() {
	tt.age = (tt.age + 1) & maxAge
}

// GetEntry returns a pointer to the corresponding tt entry.
// Given key is checked against each entry's key in the addressed bucket.
// When found, a pointer to the matching entry is returned, otherwise nil.
// Does not change statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	if tt.maxNumberOfBuckets == 0 {
		return nil
	}
	bucket := &tt.data[tt.hash(key)]
	for i := range bucket.entries {
		if bucket.entries[i].key == key {
			return &bucket.entries[i]
		}
	}
	return nil
}

// Probe returns a pointer to the corresponding tt entry
// or nil if it was not found.
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfBuckets == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	bucket := &tt.data[tt.hash(key)]
	for i := range bucket.entries {
		if bucket.entries[i].key == key {
			tt.Stats.numberOfHits++
			return &bucket.entries[i]
		}
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a TtEntry into the tt. Within the addressed bucket it reuses
// an empty slot, updates a matching slot in place, or evicts the slot
// with the lowest priority() among the bucket's BucketSize slots.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	// if the size of the TT = 0 we do not store anything
	if tt.maxNumberOfBuckets == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	bucket := &tt.data[tt.hash(key)]

	// same position already in this bucket -> update in place
	for i := range bucket.entries {
		e := &bucket.entries[i]
		if e.key == key {
			tt.Stats.numberOfUpdates++
			storedMove := Move(e.move)
			if move == MoveNone {
				move = storedMove // preserve an existing move if we store with MoveNone
			}
			storedEval := Value(e.eval)
			if eval == ValueNA {
				eval = storedEval
			}
			e.set(key, move, depth, value, valueType, eval, tt.age)
			return
		}
	}

	// empty slot available -> use it
	for i := range bucket.entries {
		e := &bucket.entries[i]
		if e.key == 0 {
			tt.numberOfEntries++
			e.set(key, move, depth, value, valueType, eval, tt.age)
			return
		}
	}

	// bucket full of other positions -> replace lowest priority slot
	tt.Stats.numberOfCollisions++
	worst := 0
	worstPriority := bucket.entries[0].priority(tt.age)
	for i := 1; i < BucketSize; i++ {
		p := bucket.entries[i].priority(tt.age)
		if p < worstPriority {
			worstPriority = p
			worst = i
		}
	}
	tt.Stats.numberOfOverwrites++
	bucket.entries[worst].set(key, move, depth, value, valueType, eval, tt.age)
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	// Create new slice/array - garbage collections takes care of cleanup
	tt.data = make([]ttBucket, tt.maxNumberOfBuckets)
	tt.numberOfEntries = 0
	tt.age = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permille as per
// UCI, estimated by sampling the first hashfullSampleBuckets buckets
// rather than scanning the whole table.
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfBuckets == 0 {
		return 0
	}
	sample := uint64(hashfullSampleBuckets)
	if sample > tt.maxNumberOfBuckets {
		sample = tt.maxNumberOfBuckets
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		for j := range tt.data[i].entries {
			if tt.data[i].entries[j].key != 0 {
				used++
			}
		}
	}
	return int((1000 * int64(used)) / (int64(sample) * BucketSize))
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max buckets %d x %d entries entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfBuckets, BucketSize, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries bumps the table's search generation. Kept for API
// compatibility with callers that age the table between searches;
// delegates to NewSearch. Runs in effectively constant time since
// priority is computed lazily from the stored generation byte rather
// than by touching every entry.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	tt.NewSearch()
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged tt generation to %d in %d ms\n", tt.age, elapsed.Milliseconds()))
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal bucket index for the data array
func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
