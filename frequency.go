package huffstat

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FrequencyTable holds the number of occurrences of each byte value.
type FrequencyTable [NumSymbols]uint64

// minShardSize is the smallest input slice worth handing to its own worker.
const minShardSize = 64 << 10

// CountFrequencies counts the occurrences of each byte in data.
func CountFrequencies(data []byte) FrequencyTable {
	var freq FrequencyTable
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// CountFrequenciesParallel is like CountFrequencies, but splits data into
// contiguous shards and counts them concurrently with up to the given number
// of workers.  The shard tables are summed, so the result is identical to
// that of CountFrequencies.
//
// The only error returned is the context's, if it is cancelled before every
// shard has been counted.
//
func CountFrequenciesParallel(ctx context.Context, data []byte, workers int) (FrequencyTable, error) {
	numShards := shardCount(len(data), workers)
	if numShards <= 1 {
		return CountFrequencies(data), ctx.Err()
	}

	shardSize := (len(data) + numShards - 1) / numShards
	shards := make([]FrequencyTable, numShards)

	g, ctx := errgroup.WithContext(ctx)
	for index := 0; index < numShards; index++ {
		index := index
		start := index * shardSize
		end := start + shardSize
		if end > len(data) {
			end = len(data)
		}
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			shards[index] = CountFrequencies(data[start:end])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return FrequencyTable{}, err
	}

	var freq FrequencyTable
	for index := range shards {
		freq.add(&shards[index])
	}
	return freq, nil
}

// Total returns the sum of all counts, i.e. the length of the input.
func (freq *FrequencyTable) Total() uint64 {
	var sum uint64
	for _, count := range freq {
		sum += count
	}
	return sum
}

// Distinct returns the number of byte values with a non-zero count.
func (freq *FrequencyTable) Distinct() int {
	var n int
	for _, count := range freq {
		if count != 0 {
			n++
		}
	}
	return n
}

// Relative returns the count of b divided by the total count.  The result is
// NaN for an empty table.
func (freq *FrequencyTable) Relative(b byte) float64 {
	return float64(freq[b]) / float64(freq.Total())
}

func (freq *FrequencyTable) add(other *FrequencyTable) {
	for symbol, count := range other {
		freq[symbol] += count
	}
}

func shardCount(dataLen int, workers int) int {
	if workers <= 1 || dataLen < 2*minShardSize {
		return 1
	}
	n := dataLen / minShardSize
	if n > workers {
		n = workers
	}
	return n
}
