// Package parallel splits density accumulation across goroutines.
//
// A grid is divided into horizontal bands of whole rows. Every band is
// processed by one task that visits all points in input order but only
// writes cells inside its own rows, so bands never share memory and each
// cell receives its contributions in the same order as a serial pass.
//
// Thread safety: WorkerPool is safe for concurrent use. Band values are
// plain data.
package parallel
