// Package observable provides a small hot-state primitive used to publish
// settings and load states to any number of readers.
//
// A State has a single logical writer and many subscribers. Subscriptions are
// context-scoped channels: the current value is delivered on subscribe, later
// values are conflated so a slow reader never blocks the writer.
package observable
