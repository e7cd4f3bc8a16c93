// Package datastate models the load status of asynchronously retrieved data.
//
// A DataState is one of Loading, Pending, Loaded, Error or NoNetwork. Loading
// never carries data, Pending and Loaded always do, and Error and NoNetwork may
// keep stale data next to the failure signal.
//
// Combine, Combine3 and Combine4 merge independent states so a caller can drive
// a single loading indicator from several sources. The merge keeps the worst
// status and only builds a payload when every input has one.
package datastate
