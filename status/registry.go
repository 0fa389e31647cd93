package status

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Registry is the central telemetry facade
// Systems cache counter pointers at construction; the tick loop writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Int returns the current value of an integer metric, 0 if never registered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Summary renders every metric as "key=value" in sorted key order
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%.2f", key, v.Get())
	})
	return b.String()
}

// AtomicFloat stores a float64 as bits in an atomic word
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
