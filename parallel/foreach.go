// Package parallel contains the bounded parallel ForEach used for read-only passes over a corpus.
package parallel

import "runtime"
import "sync"

import "github.com/klauspost/cpuid/v2"

// Workers returns the default concurrency: the number of logical cores.
func Workers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// ForEach calls body for every integer from 0 to length-1 with at most limit calls
// running at once. A limit of zero or less means Workers(). It returns once all calls
// have finished.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 0 {
		limit = Workers()
	}
	if limit > length {
		limit = length
	}

	var next = make(chan int)
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				body(i)
			}
		}()
	}
	for i := 0; i < length; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
