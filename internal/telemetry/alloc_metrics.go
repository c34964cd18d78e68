package telemetry

import (
	"sync/atomic"
)

// AllocMetrics fasst Messwerte zum Lebenszyklus der Queue-Elemente zusammen.
type AllocMetrics struct {
	allocated atomic.Uint64
	released  atomic.Uint64
	recycled  atomic.Uint64
}

var defaultAllocMetrics AllocMetrics

// DefaultAllocMetrics liefert die globalen Metriken.
func DefaultAllocMetrics() *AllocMetrics {
	return &defaultAllocMetrics
}

// ElementAllocated meldet die Belegung eines Element-Slots.
func (m *AllocMetrics) ElementAllocated(recycledSlot bool) {
	m.allocated.Add(1)
	if recycledSlot {
		m.recycled.Add(1)
	}
}

// ElementReleased meldet die Freigabe eines Elements.
func (m *AllocMetrics) ElementReleased() {
	m.released.Add(1)
}

// Snapshot gibt die gesammelten Werte zurück. Live ist die Differenz aus
// Belegungen und Freigaben und damit die Zahl der noch nicht freigegebenen
// Elemente.
func (m *AllocMetrics) Snapshot() (allocated uint64, released uint64, recycled uint64, live int64) {
	allocated = m.allocated.Load()
	released = m.released.Load()
	recycled = m.recycled.Load()
	live = int64(allocated) - int64(released)
	return allocated, released, recycled, live
}

// Reset setzt alle Zähler zurück.
func (m *AllocMetrics) Reset() {
	m.allocated.Store(0)
	m.released.Store(0)
	m.recycled.Store(0)
}
