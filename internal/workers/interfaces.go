// Package workers runs independent jobs with bounded parallelism.
//
// Encrypting or decrypting separate blobs shares no mutable state, so the
// service layer fans those jobs out through a [Pool]. The first failing job
// cancels the context handed to the remaining ones; jobs that are already
// running finish their current blob.
package workers

import "context"

// Job is a unit of work scheduled on a [Pool].
type Job func(ctx context.Context) error

// Runner is the interface implemented by [*Pool].
type Runner interface {
	Run(ctx context.Context, jobs ...Job) error
}
